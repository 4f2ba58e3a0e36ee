// Command svgo reads an SVG document, runs the optimizer pipeline over
// it, and writes the result back out, the way cmd/svg2png used to decode
// and render an SVG to a raster image.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	svg "github.com/pgavlin/svgo"
	"github.com/pgavlin/svgo/optimize"
	"github.com/pgavlin/svgo/xmlwriter"
)

func main() {
	in := flag.String("i", "", "input SVG file (default: stdin)")
	out := flag.String("o", "", "output SVG file (default: stdout)")
	config := flag.String("config", "", "path to a pipeline configuration JSON file")
	pretty := flag.Bool("pretty", false, "indent output with two spaces instead of writing it compact")
	flag.Parse()

	if err := run(*in, *out, *config, *pretty); err != nil {
		log.Fatal(err)
	}
}

func run(inPath, outPath, configPath string, pretty bool) error {
	r := os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	doc, err := svg.Read(r)
	if err != nil {
		return err
	}

	reg := optimize.DefaultPipeline()
	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		reg, err = optimize.FromConfig(cfg)
		if err != nil {
			return err
		}
	}

	if err := svg.Optimize(doc, svg.Options{Registry: reg}); err != nil {
		return err
	}

	w := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	wopts := xmlwriter.Options{EnableSelfClosing: true, TrimWhitespace: xmlwriter.TrimExceptTextContent}
	if pretty {
		wopts.Indent = "  "
	} else {
		wopts.Minify = true
	}
	return svg.Write(w, doc, wopts)
}

func loadConfig(path string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg map[string]json.RawMessage
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
