package extract

import (
    "bytes"
    "strings"

    "golang.org/x/net/html"
)

// Text extracts the visible text of an HTML document. Script, style, nav,
// footer, header and aside subtrees are dropped entirely, including their
// descendants. Remaining text nodes are trimmed and joined with newlines;
// blank segments are discarded.
func Text(input []byte) string {
    node, err := html.Parse(bytes.NewReader(input))
    if err != nil || node == nil {
        return ""
    }
    var segments []string
    collect(&segments, node)
    return strings.Join(segments, "\n")
}

func collect(segments *[]string, n *html.Node) {
    if n.Type == html.ElementNode && isNoise(n.Data) {
        return
    }
    if n.Type == html.TextNode {
        if t := strings.TrimSpace(n.Data); t != "" {
            *segments = append(*segments, t)
        }
    }
    for c := n.FirstChild; c != nil; c = c.NextSibling {
        collect(segments, c)
    }
}

// isNoise reports whether the element carries presentation or navigation
// markup rather than business content.
func isNoise(tag string) bool {
    switch strings.ToLower(tag) {
    case "script", "style", "noscript", "nav", "footer", "header", "aside":
        return true
    }
    return false
}
