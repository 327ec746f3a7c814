package handler

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var bannerLines = []string{
	` ___  __ _ ___ ___  __ _  ___ _ __  `,
	`| _ \/ _' / __/ __|/ _' |/ _ \ '_ \ `,
	`|  _/ (_| \__ \__ \ (_| |  __/ | | |`,
	`|_|  \__,_|___/___/\__, |\___|_| |_|`,
	`                   |___/            `,
}

var bannerColors = []color.Attribute{color.FgRed, color.FgYellow, color.FgGreen, color.FgCyan, color.FgBlue}

func printBanner(w io.Writer) {
	for i, line := range bannerLines {
		color.New(bannerColors[i%len(bannerColors)]).Fprintln(w, line)
	}
	fmt.Fprintln(w)
}
