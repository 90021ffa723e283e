/*
Copyright (c) 2019-2021 Andreas T Jonsson

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"os/exec"
	"path"
	"strconv"
	"strings"
	"text/template"
	"time"
)

const (
	defaultVersion = "0.1.0"
	startYear      = 2021
	copyrightFmt   = "Copyright (c) %v Andreas T Jonsson"
)

type release struct {
	Package             string
	Major, Minor, Patch byte
	Build               string
	Copyright           string
	Hash                string
}

// parseVersion accepts major.minor.patch[-build] with an optional leading v.
func parseVersion(s string) (r release, err error) {
	s = strings.TrimPrefix(s, "v")
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s, r.Build = s[:i], s[i+1:]
	}

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return r, fmt.Errorf("invalid version format: %q", s)
	}

	var nums [3]byte
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return r, fmt.Errorf("invalid version format: %q", s)
		}
		nums[i] = byte(n)
	}
	r.Major, r.Minor, r.Patch = nums[0], nums[1], nums[2]
	return r, nil
}

func copyright(year int) string {
	if year <= startYear {
		return fmt.Sprintf(copyrightFmt, startYear)
	}
	return fmt.Sprintf(copyrightFmt, fmt.Sprintf("%d-%d", startYear, year))
}

func gitHash() string {
	res, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		log.Print("could not parse Git hash: ", err)
	}
	return strings.TrimSpace(string(res))
}

// generate writes the gofmt'ed version file.
func generate(w io.Writer, r release) error {
	var buf bytes.Buffer
	tmpl := template.Must(template.New("version").Parse(content))
	if err := tmpl.Execute(&buf, r); err != nil {
		return err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

func main() {
	file := flag.String("file", "-", "Save the generated output to file.")
	pkg := flag.String("package", "version", "Package name of the generated output.")
	ver := flag.String("variable", "VC8_VERSION", "Environment variable containing the version number.")
	flag.Parse()

	v := os.Getenv(*ver)
	if v == "" {
		v = defaultVersion
		log.Printf("%s is not set. Defaulting to %s", *ver, v)
	}

	r, err := parseVersion(v)
	if err != nil {
		log.Print(err)
		r, _ = parseVersion(defaultVersion)
	}
	r.Package = *pkg
	r.Copyright = copyright(time.Now().Year())
	r.Hash = gitHash()

	fp := os.Stdout
	if *file != "-" {
		os.MkdirAll(path.Dir(*file), 0777)
		if fp, err = os.Create(*file); err != nil {
			log.Fatal(err)
		}
		defer fp.Close()
	}

	if err := generate(fp, r); err != nil {
		log.Fatal(err)
	}
}

const content = `/*
{{.Copyright}}

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

package {{.Package}}

var (
	Current = Version{ {{.Major}}, {{.Minor}}, {{.Patch}}, "{{.Build}}" }
	Copyright = "{{.Copyright}}"
	Hash = "{{.Hash}}"
)
`
