// Package spinners is the built-in catalog of named frame sets. It is pure
// data: the core package never imports it, and a caller can ignore it
// entirely and build frame sets by hand with twirl.NewFrameSet.
package spinners

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/exapsy/twirl"
)

// Default is the frame set used when a caller has no preference.
var Default = catalog["dots"]

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

var catalog = map[string]twirl.FrameSet{
	"dots":   {Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}, Interval: ms(80)},
	"dots2":  {Frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}, Interval: ms(80)},
	"dots3":  {Frames: []string{"⠋", "⠙", "⠚", "⠞", "⠖", "⠦", "⠴", "⠲", "⠳", "⠓"}, Interval: ms(80)},
	"dots4":  {Frames: []string{"⠄", "⠆", "⠇", "⠋", "⠙", "⠸", "⠰", "⠠", "⠰", "⠸", "⠙", "⠋", "⠇", "⠆"}, Interval: ms(80)},
	"dots5":  {Frames: []string{"⠋", "⠙", "⠚", "⠒", "⠂", "⠂", "⠒", "⠲", "⠴", "⠦", "⠖", "⠒", "⠐", "⠐", "⠒", "⠓", "⠋"}, Interval: ms(80)},
	"dots6":  {Frames: []string{"⠁", "⠉", "⠙", "⠚", "⠒", "⠂", "⠂", "⠒", "⠲", "⠴", "⠤", "⠄", "⠄", "⠤", "⠴", "⠲", "⠒", "⠂", "⠂", "⠒", "⠚", "⠙", "⠉", "⠁"}, Interval: ms(80)},
	"dots7":  {Frames: []string{"⠈", "⠉", "⠋", "⠓", "⠒", "⠐", "⠐", "⠒", "⠖", "⠦", "⠤", "⠠", "⠠", "⠤", "⠦", "⠖", "⠒", "⠐", "⠐", "⠒", "⠓", "⠋", "⠉", "⠈"}, Interval: ms(80)},
	"dots8":  {Frames: []string{"⠁", "⠁", "⠉", "⠙", "⠚", "⠒", "⠂", "⠂", "⠒", "⠲", "⠴", "⠤", "⠄", "⠄", "⠤", "⠠", "⠠", "⠤", "⠦", "⠖", "⠒", "⠐", "⠐", "⠒", "⠓", "⠋", "⠉", "⠈", "⠈"}, Interval: ms(80)},
	"dots9":  {Frames: []string{"⢹", "⢺", "⢼", "⣸", "⣇", "⡧", "⡗", "⡏"}, Interval: ms(80)},
	"dots10": {Frames: []string{"⢄", "⢂", "⢁", "⡁", "⡈", "⡐", "⡠"}, Interval: ms(80)},
	"dots11": {Frames: []string{"⠁", "⠂", "⠄", "⡀", "⢀", "⠠", "⠐", "⠈"}, Interval: ms(100)},
	"dots13": {Frames: []string{"⣼", "⣹", "⢻", "⠿", "⡟", "⣏", "⣧", "⣶"}, Interval: ms(80)},
	"dots-circle": {Frames: []string{"⢎ ", "⠎⠁", "⠊⠑", "⠈⠱", " ⡱", "⢀⡰", "⢄⡠", "⢆⡀"}, Interval: ms(80)},

	"sand": {Frames: []string{"⠁", "⠂", "⠄", "⡀", "⡈", "⡐", "⡠", "⣀", "⣁", "⣂", "⣄", "⣌", "⣔", "⣤", "⣥", "⣦", "⣮", "⣶", "⣷", "⣿", "⡿", "⠿", "⢟", "⠟", "⡛", "⠛", "⠫", "⢋", "⠋", "⠍", "⡉", "⠉", "⠑", "⠡", "⢁"}, Interval: ms(80)},

	"line":  {Frames: []string{"-", "\\", "|", "/"}, Interval: ms(130)},
	"line2": {Frames: []string{"⠂", "-", "–", "—", "–", "-"}, Interval: ms(100)},
	"pipe":  {Frames: []string{"┤", "┘", "┴", "└", "├", "┌", "┬", "┐"}, Interval: ms(100)},

	"simple-dots":           {Frames: []string{".  ", ".. ", "...", "   "}, Interval: ms(400)},
	"simple-dots-scrolling": {Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "}, Interval: ms(200)},

	"star":  {Frames: []string{"✶", "✸", "✹", "✺", "✹", "✷"}, Interval: ms(70)},
	"star2": {Frames: []string{"+", "x", "*"}, Interval: ms(80)},

	"flip":      {Frames: []string{"_", "_", "_", "-", "`", "`", "'", "´", "-", "_", "_", "_"}, Interval: ms(70)},
	"hamburger": {Frames: []string{"☱", "☲", "☴"}, Interval: ms(100)},

	"grow-vertical":   {Frames: []string{"▁", "▃", "▄", "▅", "▆", "▇", "▆", "▅", "▄", "▃"}, Interval: ms(120)},
	"grow-horizontal": {Frames: []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "▊", "▋", "▌", "▍", "▎"}, Interval: ms(120)},

	"balloon":  {Frames: []string{" ", ".", "o", "O", "@", "*", " "}, Interval: ms(140)},
	"balloon2": {Frames: []string{".", "o", "O", "°", "O", "o", "."}, Interval: ms(120)},

	"noise":       {Frames: []string{"▓", "▒", "░"}, Interval: ms(100)},
	"bounce":      {Frames: []string{"⠁", "⠂", "⠄", "⠂"}, Interval: ms(120)},
	"box-bounce":  {Frames: []string{"▖", "▘", "▝", "▗"}, Interval: ms(120)},
	"box-bounce2": {Frames: []string{"▌", "▀", "▐", "▄"}, Interval: ms(100)},

	"triangle":        {Frames: []string{"◢", "◣", "◤", "◥"}, Interval: ms(50)},
	"arc":             {Frames: []string{"◜", "◠", "◝", "◞", "◡", "◟"}, Interval: ms(100)},
	"circle":          {Frames: []string{"◡", "⊙", "◠"}, Interval: ms(120)},
	"square-corners":  {Frames: []string{"◰", "◳", "◲", "◱"}, Interval: ms(180)},
	"circle-quarters": {Frames: []string{"◴", "◷", "◶", "◵"}, Interval: ms(120)},
	"circle-halves":   {Frames: []string{"◐", "◓", "◑", "◒"}, Interval: ms(50)},
	"squish":          {Frames: []string{"╫", "╪"}, Interval: ms(100)},

	"toggle":   {Frames: []string{"⊶", "⊷"}, Interval: ms(250)},
	"toggle2":  {Frames: []string{"▫", "▪"}, Interval: ms(80)},
	"toggle3":  {Frames: []string{"□", "■"}, Interval: ms(120)},
	"toggle4":  {Frames: []string{"■", "□", "▪", "▫"}, Interval: ms(100)},
	"toggle5":  {Frames: []string{"▮", "▯"}, Interval: ms(100)},
	"toggle6":  {Frames: []string{"ဝ", "၀"}, Interval: ms(300)},
	"toggle7":  {Frames: []string{"⦾", "⦿"}, Interval: ms(80)},
	"toggle8":  {Frames: []string{"◍", "◌"}, Interval: ms(100)},
	"toggle9":  {Frames: []string{"◉", "◎"}, Interval: ms(100)},
	"toggle10": {Frames: []string{"㊂", "㊀", "㊁"}, Interval: ms(100)},
	"toggle11": {Frames: []string{"⧇", "⧆"}, Interval: ms(50)},
	"toggle12": {Frames: []string{"☗", "☖"}, Interval: ms(120)},
	"toggle13": {Frames: []string{"=", "*", "-"}, Interval: ms(80)},

	"arrow":  {Frames: []string{"←", "↖", "↑", "↗", "→", "↘", "↓", "↙"}, Interval: ms(100)},
	"arrow2": {Frames: []string{"⬆️ ", "↗️ ", "➡️ ", "↘️ ", "⬇️ ", "↙️ ", "⬅️ ", "↖️ "}, Interval: ms(80)},
	"arrow3": {Frames: []string{"▹▹▹▹▹", "▸▹▹▹▹", "▹▸▹▹▹", "▹▹▸▹▹", "▹▹▹▸▹", "▹▹▹▹▸"}, Interval: ms(120)},

	"bouncing-bar":  {Frames: []string{"[    ]", "[=   ]", "[==  ]", "[=== ]", "[ ===]", "[  ==]", "[   =]", "[    ]", "[   =]", "[  ==]", "[ ===]", "[====]", "[=== ]", "[==  ]", "[=   ]"}, Interval: ms(80)},
	"bouncing-ball": {Frames: []string{"( ●    )", "(  ●   )", "(   ●  )", "(    ● )", "(     ●)", "(    ● )", "(   ●  )", "(  ●   )", "( ●    )", "(●     )"}, Interval: ms(80)},

	"aesthetic": {Frames: []string{"▰▱▱▱▱▱▱", "▰▰▱▱▱▱▱", "▰▰▰▱▱▱▱", "▰▰▰▰▱▱▱", "▰▰▰▰▰▱▱", "▰▰▰▰▰▰▱", "▰▰▰▰▰▰▰", "▰▱▱▱▱▱▱"}, Interval: ms(80)},
	"beta-wave": {Frames: []string{"ρββββββ", "βρβββββ", "ββρββββ", "βββρβββ", "ββββρββ", "βββββρβ", "ββββββρ"}, Interval: ms(80)},
	"point":     {Frames: []string{"∙∙∙", "●∙∙", "∙●∙", "∙∙●", "∙∙∙"}, Interval: ms(125)},
	"layer":     {Frames: []string{"-", "=", "≡"}, Interval: ms(150)},
	"binary":    {Frames: []string{"010010", "001100", "100101", "111010", "111101", "010111", "101011", "111000", "110011", "110101"}, Interval: ms(80)},
	"dqpb":      {Frames: []string{"d", "q", "p", "b"}, Interval: ms(100)},
	"grenade":   {Frames: []string{"،  ", "′  ", " ´ ", " ‾ ", "  ⸌", "  ⸊", "  |", "  ⁎", "  ⁕", " ෴ ", "  ⁓", "   "}, Interval: ms(80)},

	"shark": {Frames: []string{
		"▐|\\____________▌", "▐_|\\___________▌", "▐__|\\__________▌", "▐___|\\_________▌",
		"▐____|\\________▌", "▐_____|\\_______▌", "▐______|\\______▌", "▐_______|\\_____▌",
		"▐________|\\____▌", "▐_________|\\___▌", "▐__________|\\__▌", "▐___________|\\_▌",
		"▐____________|\\▌", "▐____________/|▌", "▐___________/|_▌", "▐__________/|__▌",
		"▐_________/|___▌", "▐________/|____▌", "▐_______/|_____▌", "▐______/|______▌",
		"▐_____/|_______▌", "▐____/|________▌", "▐___/|_________▌", "▐__/|__________▌",
		"▐_/|___________▌", "▐/|____________▌",
	}, Interval: ms(120)},

	"smiley":      {Frames: []string{"😄 ", "😝 "}, Interval: ms(200)},
	"monkey":      {Frames: []string{"🙈 ", "🙈 ", "🙉 ", "🙊 "}, Interval: ms(300)},
	"hearts":      {Frames: []string{"💛 ", "💙 ", "💜 ", "💚 ", "❤️ "}, Interval: ms(100)},
	"clock":       {Frames: []string{"🕛 ", "🕐 ", "🕑 ", "🕒 ", "🕓 ", "🕔 ", "🕕 ", "🕖 ", "🕗 ", "🕘 ", "🕙 ", "🕚 "}, Interval: ms(100)},
	"time-travel": {Frames: []string{"🕛 ", "🕚 ", "🕙 ", "🕘 ", "🕗 ", "🕖 ", "🕕 ", "🕔 ", "🕓 ", "🕒 ", "🕑 ", "🕐 "}, Interval: ms(100)},
	"earth":       {Frames: []string{"🌍 ", "🌎 ", "🌏 "}, Interval: ms(180)},
	"moon":        {Frames: []string{"🌑 ", "🌒 ", "🌓 ", "🌔 ", "🌕 ", "🌖 ", "🌗 ", "🌘 "}, Interval: ms(80)},
	"runner":      {Frames: []string{"🚶 ", "🏃 "}, Interval: ms(140)},
	"christmas":   {Frames: []string{"🌲", "🎄"}, Interval: ms(400)},
	"weather":     {Frames: []string{"☀️ ", "☀️ ", "🌤 ", "⛅️ ", "🌥 ", "☁️ ", "🌧 ", "🌨 ", "🌧 ", "☁️ ", "🌥 ", "⛅️ ", "🌤 ", "☀️ "}, Interval: ms(100)},

	"finger-dance":      {Frames: []string{"🤘 ", "🤟 ", "🖖 ", "✋ ", "🤚 ", "👆 "}, Interval: ms(160)},
	"mindblown":         {Frames: []string{"😐 ", "😐 ", "😮 ", "😮 ", "😦 ", "😦 ", "😧 ", "😧 ", "🤯 ", "💥 ", "✨ ", "　 ", "　 ", "　 "}, Interval: ms(160)},
	"speaker":           {Frames: []string{"🔈 ", "🔉 ", "🔊 ", "🔉 "}, Interval: ms(160)},
	"orange-pulse":      {Frames: []string{"🔸 ", "🔶 ", "🟠 ", "🟠 ", "🔶 "}, Interval: ms(100)},
	"blue-pulse":        {Frames: []string{"🔹 ", "🔷 ", "🔵 ", "🔵 ", "🔷 "}, Interval: ms(100)},
	"orange-blue-pulse": {Frames: []string{"🔸 ", "🔶 ", "🟠 ", "🟠 ", "🔶 ", "🔹 ", "🔷 ", "🔵 ", "🔵 ", "🔷 "}, Interval: ms(100)},
}

// Named looks a frame set up by name. Matching is case-insensitive.
func Named(name string) (twirl.FrameSet, error) {
	fs, ok := catalog[strings.ToLower(name)]
	if !ok {
		return twirl.FrameSet{}, fmt.Errorf("unknown spinner %q", name)
	}
	return fs, nil
}

// Names returns every catalog name, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
