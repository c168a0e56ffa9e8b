// Copyright 2021, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bcm compresses and decompresses files in the BCM format.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/dsnet/bcm"
	"github.com/ogier/pflag"
)

const bcmExt = ".bcm"

const usageStr = `Usage: bcm [options] infile [outfile]

Options:
  -b N  set block size to N MiB (default: 16)
  -d    decompress
  -f    force overwrite of output file
  -h    give this help
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// filterArgs drops stray digits from short-option clusters, a historically
// accepted no-op on BCM command lines, while keeping the digits that form
// the attached value of -b.
func filterArgs() {
	args := make([]string, 1, len(os.Args))
	args[0] = os.Args[0]
	for i, arg := range os.Args[1:] {
		if arg == "--" {
			args = append(args, os.Args[1+i:]...)
			break
		}
		if arg = filterArg(arg); arg != "-" {
			args = append(args, arg)
		}
	}
	os.Args = args
}

func filterArg(arg string) string {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return arg
	}
	var sb strings.Builder
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		if c == 'b' {
			sb.WriteString(arg[i:]) // remaining digits are the block size
			break
		}
		if '0' <= c && c <= '9' {
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// targetName derives the output file name when none is given: append .bcm
// when compressing; strip .bcm, or fall back to .out, when decompressing.
func targetName(path string, decompress bool) string {
	if !decompress {
		return path + bcmExt
	}
	if strings.HasSuffix(path, bcmExt) && len(path) > len(bcmExt) {
		return path[:len(path)-len(bcmExt)]
	}
	return path + ".out"
}

func confirmOverwrite(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return true
	}
	fmt.Fprintf(os.Stderr, "File %q already exists. Overwrite (y/n)? ", path)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == "y"
}

func main() {
	log.SetPrefix("bcm: ")
	log.SetFlags(0)

	blockMiB := pflag.IntP("block", "b", 16, "block size in MiB")
	decompress := pflag.BoolP("decompress", "d", false, "decompress")
	force := pflag.BoolP("force", "f", false, "force overwrite of output file")
	help := pflag.BoolP("help", "h", false, "give this help")
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }

	filterArgs()
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if pflag.NArg() < 1 || pflag.NArg() > 2 {
		usage(os.Stderr)
		os.Exit(1)
	}
	if *blockMiB < 1 || *blockMiB > 1<<11-1 {
		log.Fatal("block size is out of range")
	}
	bsize := *blockMiB << 20

	ifname := pflag.Arg(0)
	ofname := targetName(ifname, *decompress)
	if pflag.NArg() == 2 {
		ofname = pflag.Arg(1)
	}

	in, err := os.Open(ifname)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()
	st, err := in.Stat()
	if err != nil {
		log.Fatal(err)
	}

	if !*force && !confirmOverwrite(ofname) {
		log.Fatal("not overwritten")
	}
	out, err := os.Create(ofname)
	if err != nil {
		log.Fatal(err)
	}

	// Progress over the input file, in the manner of the historical tool.
	bar := pb.New64(st.Size()).SetUnits(pb.U_BYTES)
	bar.Output = os.Stderr
	bar.ShowSpeed = true
	bar.Start()
	src := bar.NewProxyReader(bufio.NewReader(in))
	dst := bufio.NewWriter(out)

	start := time.Now()
	var read, wrote int64
	if *decompress {
		fmt.Fprintf(os.Stderr, "Decompressing %q:\n", ifname)
		read, wrote, err = decode(dst, src)
	} else {
		fmt.Fprintf(os.Stderr, "Compressing %q:\n", ifname)
		read, wrote, err = encode(dst, src, bsize)
	}
	bar.Finish()
	if err != nil {
		log.Fatal(err)
	}
	if err := dst.Flush(); err != nil {
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}

	// Carry the input timestamp over to the output.
	if err := os.Chtimes(ofname, st.ModTime(), st.ModTime()); err != nil {
		log.Fatal(err)
	}

	fmt.Fprintf(os.Stderr, "%d -> %d in %.1f sec\n",
		read, wrote, time.Since(start).Seconds())
}

func encode(w io.Writer, r io.Reader, bsize int) (read, wrote int64, err error) {
	zw, err := bcm.NewWriter(w, &bcm.WriterConfig{BlockSize: bsize})
	if err != nil {
		return 0, 0, err
	}
	if _, err := io.Copy(zw, r); err != nil {
		return zw.InputOffset, zw.OutputOffset, err
	}
	if err := zw.Close(); err != nil {
		return zw.InputOffset, zw.OutputOffset, err
	}
	return zw.InputOffset, zw.OutputOffset, nil
}

func decode(w io.Writer, r io.Reader) (read, wrote int64, err error) {
	zr, err := bcm.NewReader(r, nil)
	if err != nil {
		return 0, 0, err
	}
	if _, err := io.Copy(w, zr); err != nil {
		return zr.InputOffset, zr.OutputOffset, err
	}
	if err := zr.Close(); err != nil {
		return zr.InputOffset, zr.OutputOffset, err
	}
	return zr.InputOffset, zr.OutputOffset, nil
}
