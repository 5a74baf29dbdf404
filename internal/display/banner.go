package display

import (
	"fmt"
	"io"

	"github.com/backmassage/batchren/internal/config"
	"github.com/backmassage/batchren/internal/term"
)

const bannerArt = ` _           _       _
| |__   __ _| |_ ___| |__  _ __ ___ _ __
| '_ \ / _` + "`" + ` | __/ __| '_ \| '__/ _ \ '_ \
| |_) | (_| | || (__| | | | | |  __/ | | |
|_.__/ \__,_|\__\___|_| |_|_|  \___|_| |_|`

// PrintBanner prints the ASCII art banner and version in program style.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Prog.Render(bannerArt))
	fmt.Fprintln(w, term.Etc.Render("an interactive batch file renamer "+config.Version))
	fmt.Fprintln(w)
}

// VersionText is the text of the `version' command and --version flag.
func VersionText() string {
	return term.Prog.Render("batchren") + ": an interactive batch file renamer " + config.Version + "\n" +
		term.Etc.Render("This is free software; see the LICENSE file for more information. There is NO\n"+
			"warranty; not even for MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.")
}
