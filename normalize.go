package mensafeed

import (
	"log"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var reNewlineRun = regexp.MustCompile(`\n\s*\n+`)

// NormalizeDocument loosens the document structure so the extraction
// code downstream can assume one shape:
//
//   - div and span wrappers are unwrapped, their children spliced into
//     the parent in original order
//   - every <br> becomes a literal newline text node
//   - runs of newlines inside one text node collapse to a single one
//
// The menu page nests meal text inconsistently: some weekdays carry a
// proper list, others a paragraph with extra div/span layers and <br>
// separated lines. Normalization is best-effort, a node that cannot be
// rewritten is logged and left alone.
func NormalizeDocument(doc *goquery.Document) {
	doc.Find("div, span").Each(func(i int, sel *goquery.Selection) {
		unwrapNode(sel.Get(0))
	})
	doc.Find("br").Each(func(i int, sel *goquery.Selection) {
		replaceWithNewline(sel.Get(0))
	})
	collapseNewlines(doc.Get(0))
}

// unwrapNode splices n's children into its parent at n's position and
// drops n.
func unwrapNode(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		log.Printf("normalize: cannot unwrap parentless <%s>, skipping", n.Data)
		return
	}
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		n.RemoveChild(child)
		parent.InsertBefore(child, n)
		child = next
	}
	parent.RemoveChild(n)
}

func replaceWithNewline(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		log.Printf("normalize: cannot replace parentless <br>, skipping")
		return
	}
	parent.InsertBefore(&html.Node{Type: html.TextNode, Data: "\n"}, n)
	parent.RemoveChild(n)
}

func collapseNewlines(n *html.Node) {
	if n.Type == html.TextNode {
		n.Data = reNewlineRun.ReplaceAllString(n.Data, "\n")
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collapseNewlines(child)
	}
}
