/*
 * lazyjson, a lazily-inflating JSON value library
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command lazyjson parses a JSON file and prints it back, optionally
// re-indented, or reports parse statistics.
package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/cpuid/v2"

	charmlog "charm.land/log/v2"

	"github.com/lazyjson/lazyjson"
)

var opts struct {
	Eager  bool   `long:"eager" description:"parse eagerly instead of lazily"`
	Indent int    `long:"indent" default:"0" description:"pretty-print with this indent width (0 for compact)"`
	Stats  bool   `long:"stats" description:"print parse statistics and CPU features instead of the value"`
	Debug  bool   `long:"debug" description:"dump the parsed value tree with pp instead of rendering JSON"`
	Args   struct {
		File string `positional-arg-name:"file"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	log := charmlog.New(os.Stderr)

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	raw, err := readFile(opts.Args.File)
	if err != nil {
		log.Fatal("failed to read input", "file", opts.Args.File, "err", err)
	}

	var parseOpts []lazyjson.Option
	if opts.Eager {
		parseOpts = append(parseOpts, lazyjson.WithEager())
	}

	start := time.Now()
	val, err := lazyjson.ParseBytes(raw, parseOpts...)
	elapsed := time.Since(start)
	if err != nil {
		log.Fatal("parse failed", "err", err)
	}

	if opts.Stats {
		printStats(log, val, raw, elapsed)
		return
	}

	if opts.Debug {
		pp.Println(val)
		return
	}

	var out []byte
	if opts.Indent > 0 {
		out, err = lazyjson.RenderIndent(val, opts.Indent)
	} else {
		out, err = lazyjson.RenderCompact(val)
	}
	if err != nil {
		log.Fatal("render failed", "err", err)
	}
	fmt.Println(string(out))
}

// readFile loads path, transparently decompressing a .gz or .zst
// extension.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		return io.ReadAll(gr)
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	default:
		return io.ReadAll(f)
	}
}

func printStats(log *charmlog.Logger, val *lazyjson.Value, raw []byte, elapsed time.Duration) {
	fmt.Printf("kind:       %v\n", val.Kind())
	fmt.Printf("bytes:      %d\n", len(raw))
	fmt.Printf("parse time: %s\n", elapsed)
	fmt.Printf("cpu:        %s (%d cores, AVX2=%v)\n", cpuid.CPU.BrandName, cpuid.CPU.LogicalCores, cpuid.CPU.Supports(cpuid.AVX2))
}
