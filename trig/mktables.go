//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"math"
	"os"
)

const (
	tableSize = 256
	amplitude = 32767
	perLine   = 8
)

func main() {
	log.Default().SetFlags(log.Lshortfile)

	source := bytes.NewBuffer(nil)
	fmt.Fprintln(source, `// Code generated by "go run mktables.go"; DO NOT EDIT.`)
	fmt.Fprintln(source)
	fmt.Fprintln(source, "package trig")
	fmt.Fprintln(source)
	fmt.Fprintf(source, "// sinTable holds round(%d*sin(2*Pi*i/%d)) for i in [0, %d].\n", amplitude, tableSize, tableSize)
	fmt.Fprintf(source, "var sinTable = [%d]int16{\n", tableSize+1)
	for i := 0; i <= tableSize; i++ {
		v := math.Round(amplitude * math.Sin(2*math.Pi*float64(i)/tableSize))
		fmt.Fprintf(source, "%d,", int16(v))
		if i%perLine == perLine-1 || i == tableSize {
			fmt.Fprintln(source)
		} else {
			fmt.Fprint(source, " ")
		}
	}
	fmt.Fprintln(source, "}")

	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	if err = os.WriteFile("table.go", formattedSource, 0644); err != nil {
		log.Fatalln(err)
	}
}
