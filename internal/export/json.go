package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/props"
)

// JSON returns the tree exactly as stored, pretty-printed with two-space
// indentation and a trailing newline.
func JSON(components []*builder.Node) (string, error) {
	if components == nil {
		components = []*builder.Node{}
	}
	data, err := json.MarshalIndent(components, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding tree: %w", err)
	}
	return string(data) + "\n", nil
}

// Parse reads a tree written by JSON. Missing props and children become
// empty, and every node must name a type.
func Parse(data []byte) ([]*builder.Node, error) {
	var nodes []*builder.Node
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&nodes); err != nil {
		return nil, fmt.Errorf("decoding tree: %w", err)
	}
	if nodes == nil {
		nodes = []*builder.Node{}
	}
	if err := normalize(nodes, "$"); err != nil {
		return nil, err
	}
	return nodes, nil
}

func normalize(nodes []*builder.Node, path string) error {
	for i, n := range nodes {
		at := fmt.Sprintf("%s[%d]", path, i)
		if n == nil {
			return fmt.Errorf("%s: null node", at)
		}
		if n.Type == "" {
			return fmt.Errorf("%s: missing type", at)
		}
		if n.Props == nil {
			n.Props = props.Props{}
		}
		if n.Children == nil {
			n.Children = []*builder.Node{}
		}
		if err := normalize(n.Children, at+".children"); err != nil {
			return err
		}
	}
	return nil
}
