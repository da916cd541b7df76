/*
Package fiberdbg implements helpers to debug a retained fiber tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package fiberdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"testing"
	"text/template"

	"github.com/npillmayer/fiber"
	tp "github.com/xlab/treeprint"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a fiber tree. The diagram is in
// GraphViz (DOT) format. Clients provide the root node of the tree and a
// Writer. Host nodes are drawn as boxes, render roots as double circles,
// composite nodes as plain ellipses.
func ToGraphViz(root *fiber.Node, w io.Writer) {
	tmpl, err := template.New("fiber").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("fibernode").Funcs(
		template.FuncMap{
			"shape": nodeShape,
			"label": nodeLabel,
		}).Parse(fiberNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("fiberedge").Parse(fiberEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		panic(err)
	}
	dict := make(map[*fiber.Node]string, 256)
	nodes(root, w, dict, &gparams)
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a fiber node and a testing.T, it
// will create a GraphViz image of the tree under root and write it to a
// file in the current folder, choosing a unique file name. The image is
// in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *fiber.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "fiber.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing fiber digraph to %s\n", tmpfile.Name())
	ToGraphViz(root, tmpfile)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// Sprint returns an ASCII rendering of the tree under root, one line per
// node, suitable for t.Logf.
func Sprint(root *fiber.Node) string {
	printer := tp.New()
	printNode(printer, root)
	return printer.String()
}

func printNode(printer tp.Tree, n *fiber.Node) {
	if n == nil {
		return
	}
	if n.FirstChild() == nil {
		printer.AddNode(nodeLabel(n))
		return
	}
	branch := printer.AddBranch(nodeLabel(n))
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		printNode(branch, ch)
	}
}

type node struct {
	N    *fiber.Node
	Name string
}

func nodes(n *fiber.Node, w io.Writer, dict map[*fiber.Node]string, gparams *graphParamsType) {
	fiberNode(n, w, dict, gparams)
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		nodes(ch, w, dict, gparams)
		fiberEdge(n, ch, w, dict, gparams)
	}
}

func fiberNode(n *fiber.Node, w io.Writer, dict map[*fiber.Node]string, gparams *graphParamsType) {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		panic(err)
	}
}

type edge struct {
	N1, N2 node
}

func fiberEdge(n1 *fiber.Node, n2 *fiber.Node, w io.Writer, dict map[*fiber.Node]string,
	gparams *graphParamsType) {
	//
	e := edge{node{n1, dict[n1]}, node{n2, dict[n2]}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

func nodeShape(n *fiber.Node) string {
	switch n.Kind() {
	case fiber.KindHost:
		return "box"
	case fiber.KindRoot:
		return "doublecircle"
	}
	return "ellipse"
}

func nodeLabel(n *fiber.Node) string {
	if tok, ok := fiber.TokenOf(n); ok {
		return fmt.Sprintf("%s %s", n.Kind(), tok.Name())
	}
	if n.Payload() == nil {
		return n.Kind().String()
	}
	return fmt.Sprintf("%s %v", n.Kind(), n.Payload())
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const fiberNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" (label .N) }} shape={{ shape .N }} style=filled fillcolor=lightblue3 ] ;
`

const fiberEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
