// assets/embed.go
//
// Files compiled into the binary:
//   - words.txt:       offline word list used when the random-word API is not wanted.
//   - migrations/*.sql: SQLite schema, applied in lexical order.
//   - web/index.html:  the single-page game UI served at "/".

package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed words.txt migrations/*.sql web/index.html
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded offline word list (lowercase, comments skipped).
func WordList() ([]string, error) {
	return readLines("words.txt")
}

// Migrations returns the embedded migrations directory.
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "migrations")
}

// IndexHTML returns the game page.
func IndexHTML() ([]byte, error) {
	return FS.ReadFile("web/index.html")
}
