package htmlutil

import (
	"bytes"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

type PositionedNode struct {
	Node *html.Node
	// offset into the root's rendered text at which this node's own text begins
	Pos int
}

// Positions walks every descendant of root in document order and tags each
// with the text offset where its rendered text starts. The root itself is
// not included.
func Positions(root *html.Node) []PositionedNode {
	var out []PositionedNode
	offset := 0

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			out = append(out, PositionedNode{Node: child, Pos: offset})
			if child.Type == html.TextNode {
				offset += len(child.Data)
				continue
			}
			walk(child)
		}
	}
	walk(root)

	return out
}

// FirstAttr returns the name and value of a node's first attribute,
// or ok=false when it has none.
func FirstAttr(node *html.Node) (name, value string, ok bool) {
	if len(node.Attr) == 0 {
		return "", "", false
	}
	return node.Attr[0].Key, node.Attr[0].Val, true
}
