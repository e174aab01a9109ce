package visualize

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/gohyp/pkg/strategy"
)

// Options configures SVG tree export.
type Options struct {
	Width       int    // Canvas width in pixels
	Height      int    // Canvas height in pixels
	ShowLabels  bool   // Show descriptor labels on each node
	ColorByKind bool   // Color nodes by descriptor kind
	NodeRadius  int    // Radius of leaf/container nodes (default: 18)
	LevelHeight int    // Vertical spacing between tree depths (default: 90)
	Margin      int    // Canvas margin in pixels (default: 40)
	Title       string // Optional title for the visualization
	MaxDepth    int    // Stop decomposing past this depth, 0 = unbounded
}

// DefaultOptions returns sensible default SVG export options.
func DefaultOptions() Options {
	return Options{
		Width:       1200,
		Height:      800,
		ShowLabels:  true,
		ColorByKind: true,
		NodeRadius:  18,
		LevelHeight: 90,
		Margin:      40,
		Title:       "Template",
		MaxDepth:    0,
	}
}

// node is one rendered element of the decompose tree.
type node struct {
	label    string
	kind     strategy.DescriptorKind
	depth    int
	x        float64
	children []*node
}

// treeNode recursively decomposes t under s, building child nodes by
// re-entering reg for each component's descriptor (spec §4.1's
// decompose operation; reg.Build mirrors how a test runner would walk
// a drawn template for diagnostics).
func treeNode(reg *strategy.Registry, s strategy.Strategy, t strategy.Template, settings strategy.Settings, depth, maxDepth int) *node {
	n := &node{label: s.Descriptor().String(), kind: s.Descriptor().Kind(), depth: depth}
	if maxDepth > 0 && depth >= maxDepth {
		return n
	}
	components, err := s.Decompose(t)
	if err != nil || len(components) == 0 {
		return n
	}
	for _, c := range components {
		childStrategy, err := reg.Build(c.Descriptor, settings)
		if err != nil {
			n.children = append(n.children, &node{label: c.Descriptor.String(), kind: c.Descriptor.Kind(), depth: depth + 1})
			continue
		}
		n.children = append(n.children, treeNode(reg, childStrategy, c.Template, settings, depth+1, maxDepth))
	}
	return n
}

// layout assigns an x coordinate to every node by a simple bottom-up
// subtree-width pass: a leaf occupies one slot, a container is centered
// over its children.
func layout(n *node, nextSlot *float64, slotWidth float64) {
	if len(n.children) == 0 {
		n.x = *nextSlot * slotWidth
		*nextSlot++
		return
	}
	for _, c := range n.children {
		layout(c, nextSlot, slotWidth)
	}
	first := n.children[0].x
	last := n.children[len(n.children)-1].x
	n.x = (first + last) / 2
}

func maxDepthOf(n *node) int {
	d := n.depth
	for _, c := range n.children {
		if cd := maxDepthOf(c); cd > d {
			d = cd
		}
	}
	return d
}

func countLeaves(n *node) int {
	if len(n.children) == 0 {
		return 1
	}
	total := 0
	for _, c := range n.children {
		total += countLeaves(c)
	}
	return total
}

// RenderTemplate renders the decompose tree rooted at t under s as an
// SVG document.
func RenderTemplate(reg *strategy.Registry, s strategy.Strategy, t strategy.Template, settings strategy.Settings, opts Options) ([]byte, error) {
	if reg == nil {
		return nil, fmt.Errorf("visualize: registry cannot be nil")
	}
	if s == nil {
		return nil, fmt.Errorf("visualize: strategy cannot be nil")
	}
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = 18
	}
	if opts.LevelHeight <= 0 {
		opts.LevelHeight = 90
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	root := treeNode(reg, s, t, settings, 0, opts.MaxDepth)

	leaves := countLeaves(root)
	drawWidth := float64(opts.Width - 2*opts.Margin)
	slotWidth := drawWidth / float64(leaves+1)

	nextSlot := 1.0
	layout(root, &nextSlot, slotWidth)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(opts.Width/2, 25, opts.Title,
			"text-anchor:middle;font-size:20px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
		stats := fmt.Sprintf("nodes: %d | leaves: %d | depth: %d", countNodes(root), leaves, maxDepthOf(root))
		canvas.Text(opts.Width/2, 45, stats,
			"text-anchor:middle;font-size:12px;fill:#a0aec0;font-family:monospace")
	}

	drawEdges(canvas, root, opts)
	drawNodes(canvas, root, opts)
	if opts.ColorByKind {
		drawLegend(canvas, opts)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveTemplateSVG renders the tree and writes it to filepath with 0644
// permissions.
func SaveTemplateSVG(reg *strategy.Registry, s strategy.Strategy, t strategy.Template, settings strategy.Settings, filepath string, opts Options) error {
	data, err := RenderTemplate(reg, s, t, settings, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// RenderShrinkSteps draws the original template and the first maxSteps
// candidates of its Simplify sequence side by side, each as its own
// decompose tree, so a shrink run can be eyeballed as a before/after
// strip rather than read off a log line.
func RenderShrinkSteps(reg *strategy.Registry, s strategy.Strategy, t strategy.Template, settings strategy.Settings, maxSteps int, opts Options) ([]byte, error) {
	if reg == nil {
		return nil, fmt.Errorf("visualize: registry cannot be nil")
	}
	if s == nil {
		return nil, fmt.Errorf("visualize: strategy cannot be nil")
	}
	if maxSteps < 0 {
		maxSteps = 0
	}
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = 18
	}
	if opts.LevelHeight <= 0 {
		opts.LevelHeight = 90
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	seq, err := s.Simplify(t)
	if err != nil {
		return nil, fmt.Errorf("visualize: simplify: %w", err)
	}
	templates := []strategy.Template{t}
	for cand := range seq {
		if len(templates) > maxSteps {
			break
		}
		templates = append(templates, cand)
	}

	panelWidth := opts.Width
	height := opts.Height
	if height <= 0 {
		height = 500
	}

	panels := make([][]byte, 0, len(templates))
	maxHeight := height
	for _, tmpl := range templates {
		root := treeNode(reg, s, tmpl, settings, 0, opts.MaxDepth)
		leaves := countLeaves(root)
		slotWidth := float64(panelWidth-2*opts.Margin) / float64(leaves+1)
		nextSlot := 1.0
		layout(root, &nextSlot, slotWidth)
		depth := maxDepthOf(root)
		panelHeight := opts.Margin + 40 + (depth+1)*opts.LevelHeight
		if panelHeight > maxHeight {
			maxHeight = panelHeight
		}
		buf := new(bytes.Buffer)
		panelCanvas := svg.New(buf)
		panelCanvas.Start(panelWidth, panelHeight)
		drawEdges(panelCanvas, root, opts)
		drawNodes(panelCanvas, root, opts)
		panelCanvas.End()
		panels = append(panels, buf.Bytes())
	}

	totalWidth := panelWidth * len(panels)
	if totalWidth == 0 {
		totalWidth = panelWidth
	}

	out := new(bytes.Buffer)
	canvas := svg.New(out)
	canvas.Start(totalWidth, maxHeight+40)
	canvas.Rect(0, 0, totalWidth, maxHeight+40, "fill:#1a1a2e")
	if opts.Title != "" {
		canvas.Text(totalWidth/2, 25, opts.Title,
			"text-anchor:middle;font-size:18px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}
	for i, panel := range panels {
		label := fmt.Sprintf("step %d", i)
		if i == 0 {
			label = "original"
		}
		canvas.Text(i*panelWidth+panelWidth/2, 40, label,
			"text-anchor:middle;font-size:12px;fill:#a0aec0;font-family:monospace")
		canvas.Gtransform(fmt.Sprintf("translate(%d,40)", i*panelWidth))
		canvas.Rect(0, 0, panelWidth, maxHeight, "fill:none;stroke:#2d3748;stroke-width:1")
		embedSVG(canvas, panel)
		canvas.Gend()
	}
	canvas.End()
	return out.Bytes(), nil
}

// embedSVG writes a standalone child SVG document's drawing commands
// into the parent canvas, stripping its own <svg>/<?xml> wrapper tags.
func embedSVG(canvas *svg.SVG, child []byte) {
	start := bytes.Index(child, []byte(">"))
	end := bytes.LastIndex(child, []byte("</svg>"))
	if start < 0 || end < 0 || end <= start {
		return
	}
	canvas.Writer.Write(child[start+1 : end])
}

func countNodes(n *node) int {
	total := 1
	for _, c := range n.children {
		total += countNodes(c)
	}
	return total
}

func nodeY(n *node, opts Options) int {
	return opts.Margin + 40 + n.depth*opts.LevelHeight
}

func nodeX(n *node, opts Options) int {
	return opts.Margin + int(n.x)
}

func drawEdges(canvas *svg.SVG, n *node, opts Options) {
	px, py := nodeX(n, opts), nodeY(n, opts)
	for _, c := range n.children {
		cx, cy := nodeX(c, opts), nodeY(c, opts)
		canvas.Line(px, py, cx, cy, "stroke:#4a5568;stroke-width:2;opacity:0.8")
		drawEdges(canvas, c, opts)
	}
}

func drawNodes(canvas *svg.SVG, n *node, opts Options) {
	x, y := nodeX(n, opts), nodeY(n, opts)
	color := kindColor(n.kind, opts)
	canvas.Circle(x, y, opts.NodeRadius, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:2;opacity:0.9", color))
	if opts.ShowLabels {
		canvas.Text(x, y+opts.NodeRadius+14, n.label,
			"text-anchor:middle;font-size:10px;font-family:monospace;fill:#e2e8f0")
	}
	for _, c := range n.children {
		drawNodes(canvas, c, opts)
	}
}

func kindColor(kind strategy.DescriptorKind, opts Options) string {
	if !opts.ColorByKind {
		return "#4a5568"
	}
	switch kind {
	case strategy.KindLeaf:
		return "#4299e1" // Blue
	case strategy.KindTuple:
		return "#48bb78" // Green
	case strategy.KindList:
		return "#ed8936" // Orange
	case strategy.KindSet:
		return "#9f7aea" // Purple
	case strategy.KindFrozenSet:
		return "#805ad5" // Dark purple
	case strategy.KindMap:
		return "#ecc94b" // Yellow
	default:
		return "#4a5568"
	}
}

func drawLegend(canvas *svg.SVG, opts Options) {
	entries := []struct {
		name string
		kind strategy.DescriptorKind
	}{
		{"leaf", strategy.KindLeaf},
		{"tuple", strategy.KindTuple},
		{"list", strategy.KindList},
		{"set", strategy.KindSet},
		{"frozenset", strategy.KindFrozenSet},
		{"map", strategy.KindMap},
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	legendX := opts.Width - opts.Margin - 120
	legendY := opts.Margin + 20

	canvas.Rect(legendX-10, legendY-15, 130, len(entries)*22+20,
		"fill:#2d3748;stroke:#4a5568;stroke-width:1;opacity:0.95;rx:5")
	canvas.Text(legendX, legendY, "Kinds", "font-size:13px;font-weight:bold;fill:#e2e8f0")
	legendY += 22

	for _, e := range entries {
		canvas.Circle(legendX+8, legendY, 7, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1", kindColor(e.kind, opts)))
		canvas.Text(legendX+22, legendY+4, e.name, "font-size:11px;fill:#cbd5e0")
		legendY += 22
	}
}
