package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sanjeevprasad/yamp/node"
)

// pathStep is one hop of a dotted get path: either a mapping key or a
// sequence index, as written "servers[0].host".
type pathStep struct {
	key     string
	isIndex bool
	index   int
}

func parsePath(s string) ([]pathStep, error) {
	var steps []pathStep
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			continue
		}
		name, indices, err := splitIndices(part)
		if err != nil {
			return nil, err
		}
		if name != "" {
			steps = append(steps, pathStep{key: name})
		}
		for _, idx := range indices {
			steps = append(steps, pathStep{isIndex: true, index: idx})
		}
	}
	return steps, nil
}

// splitIndices splits "name[0][1]" into "name" and [0, 1].
func splitIndices(part string) (string, []int, error) {
	bracket := strings.IndexByte(part, '[')
	if bracket < 0 {
		return part, nil, nil
	}
	name := part[:bracket]
	rest := part[bracket:]
	var indices []int
	for len(rest) > 0 {
		if rest[0] != '[' {
			return "", nil, fmt.Errorf("invalid path segment %q", part)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", nil, fmt.Errorf("unterminated index in %q", part)
		}
		n, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, fmt.Errorf("invalid index in %q: %w", part, err)
		}
		indices = append(indices, n)
		rest = rest[end+1:]
	}
	return name, indices, nil
}

func walkPath(root *node.Node, steps []pathStep) (*node.Node, error) {
	cur := root
	for _, step := range steps {
		if step.isIndex {
			if cur.Kind != node.Sequence {
				return nil, fmt.Errorf("cannot index a %v with [%d]", cur.Kind, step.index)
			}
			if step.index < 0 || step.index >= len(cur.Items) {
				return nil, fmt.Errorf("index %d out of range (len %d)", step.index, len(cur.Items))
			}
			cur = cur.Items[step.index]
			continue
		}
		if cur.Kind != node.Mapping {
			return nil, fmt.Errorf("cannot look up key %q on a %v", step.key, cur.Kind)
		}
		next := cur.Get(step.key)
		if next == nil {
			return nil, fmt.Errorf("no such key %q", step.key)
		}
		cur = next
	}
	return cur, nil
}
