package ui

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gookit/color"
	"github.com/pterm/pterm"
)

type progressBar struct {
	Title               string
	titleStyle          *pterm.Style
	barStyle            *pterm.Style
	Current, Total      int64
	Percent             float32
	RoundingFactor      time.Duration
	Started, Lastupdate time.Time
	ShowBytes           bool

	barCharacter  string
	lastCharacter string
	barFiller     string

	Done bool
}

func ProgressBar(title string, max int64) *progressBar {
	if max == 0 {
		max = 1 // avoid division by zero in pterm
	}

	pb := progressBar{
		Title: title,

		Total:          max,
		RoundingFactor: time.Second,
		barCharacter:   "█",
		lastCharacter:  "█",
		barFiller:      " ",
	}
	if pb.titleStyle == nil {
		pb.titleStyle = pterm.NewStyle()
	}
	if pb.barStyle == nil {
		pb.barStyle = pterm.NewStyle()
	}

	pb.Started = time.Now()

	return &pb
}

func (pb *progressBar) ChangeMax(newmax int64) {
	if newmax == 0 {
		Fatal().Msg("Cannot set max to 0")
	}
	pb.Total = newmax
}

func (pb *progressBar) GetMax() int64 {
	return pb.Total
}

func (pb *progressBar) Add(i int64) {
	atomic.AddInt64(&pb.Current, i)
	pb.update()
}

func (pb *progressBar) Set(i int64) {
	atomic.StoreInt64(&pb.Current, i)
	pb.update()
}

func (pb *progressBar) Finish() {
	pb.Done = true

	outputMutex.Lock()
	pterm.Fprinto(nil, strings.Repeat(" ", pterm.GetTerminalWidth()))
	pterm.Fprinto(nil)
	clearneeded = false
	outputMutex.Unlock()
}

func (pb *progressBar) update() {
	if time.Since(pb.Lastupdate) < 1*time.Second {
		return
	}

	outputMutex.Lock()

	clearneeded = true
	pb.Lastupdate = time.Now()

	var before string
	var after string

	width := pterm.GetTerminalWidth()

	var currentPercentage float32
	if pb.Total > 0 {
		currentPercentage = float32(pb.Current) * 100 / float32(pb.Total)
	}

	if currentPercentage > 100 {
		currentPercentage = 100
	}

	pb.Percent = currentPercentage

	var decoratorCount string
	if pb.ShowBytes {
		decoratorCount = pterm.Gray("[") + pterm.LightWhite(byteCount(pb.Current)) + pterm.Gray("/") + pterm.LightWhite(byteCount(pb.Total)) + pterm.Gray("]")
	} else {
		decoratorCount = pterm.Gray("[") + pterm.LightWhite(pb.Current) + pterm.Gray("/") + pterm.LightWhite(pb.Total) + pterm.Gray("]")
	}

	decoratorCurrentPercentage := color.RGB(pterm.NewRGB(255, 0, 0).Fade(0, float32(pb.Total), float32(pb.Current), pterm.NewRGB(0, 255, 0)).GetValues()).
		Sprint(fmt.Sprintf("%.2f%%", currentPercentage))

	decoratorTitle := pb.titleStyle.Sprint(pb.Title)

	before += decoratorTitle + " "
	before += decoratorCount + " "

	after += " "
	after += decoratorCurrentPercentage + " "
	after += "| " + time.Since(pb.Started).Round(pb.RoundingFactor).String()

	barMaxLength := width - len(pterm.RemoveColorFromString(before)) - len(pterm.RemoveColorFromString(after)) - 1

	barCurrentLength := int(math.Round(float64(currentPercentage * float32(barMaxLength) / 100)))

	var barFiller string
	if barMaxLength-barCurrentLength > 0 {
		barFiller = strings.Repeat(pb.barFiller, barMaxLength-barCurrentLength)
	}

	var bar string
	if pb.Total > 0 && barCurrentLength > 0 {
		bar = pb.barStyle.Sprint(strings.Repeat(pb.barCharacter, barCurrentLength)+pb.lastCharacter) + barFiller
	}

	pterm.Fprinto(nil, before+bar+after)

	outputMutex.Unlock()
}

func byteCount(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
