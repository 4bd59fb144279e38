package draw

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"strconv"
	"strings"
)

func bplong(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

func glong(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func bppoint(b []byte, p image.Point) {
	bplong(b[0:], uint32(int32(p.X)))
	bplong(b[4:], uint32(int32(p.Y)))
}

func bprect(b []byte, r image.Rectangle) {
	bppoint(b[0:], r.Min)
	bppoint(b[8:], r.Max)
}

// parseCtlLine splits a device control line into its fields.
func parseCtlLine(s string) []string {
	var fields []string
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	return fields
}

// atoiField parses a fixed-width, space-padded decimal field.
func atoiField(b []byte) int {
	n, _ := strconv.Atoi(strings.TrimSpace(string(b)))
	return n
}

// imageInfo is the 12-field info line returned by a draw ctl file.
type imageInfo struct {
	id    int
	image int
	pix   Pix
	repl  bool
	r     image.Rectangle
	clipr image.Rectangle
}

// parseInfo parses
//
//	id image chan repl minx miny maxx maxy clipminx clipminy clipmaxx clipmaxy
func parseInfo(s string) (imageInfo, error) {
	var info imageInfo
	f := parseCtlLine(s)
	if len(f) < 12 {
		return info, fmt.Errorf("draw: malformed ctl reply: %d fields", len(f))
	}
	var n [12]int
	for i, s := range f[:12] {
		if i == 2 {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return info, fmt.Errorf("draw: malformed ctl field %d: %q", i, s)
		}
		n[i] = v
	}
	pix, err := ParsePix(f[2])
	if err != nil {
		return info, err
	}
	info.id = n[0]
	info.image = n[1]
	info.pix = pix
	info.repl = n[3] != 0
	info.r = image.Rect(n[4], n[5], n[6], n[7])
	info.clipr = image.Rect(n[8], n[9], n[10], n[11])
	return info, nil
}
