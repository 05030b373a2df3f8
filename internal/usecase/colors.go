package usecase

// Цвета языков как в linguist; для неизвестных — нейтральный серый.
const defaultLanguageColor = "#586069"

var languageColors = map[string]string{
	"JavaScript":       "#f1e05a",
	"TypeScript":       "#3178c6",
	"Python":           "#3572A5",
	"Go":               "#00ADD8",
	"Java":             "#b07219",
	"C":                "#555555",
	"C++":              "#f34b7d",
	"C#":               "#178600",
	"Ruby":             "#701516",
	"PHP":              "#4F5D95",
	"Swift":            "#F05138",
	"Kotlin":           "#A97BFF",
	"Rust":             "#dea584",
	"Dart":             "#00B4AB",
	"HTML":             "#e34c26",
	"CSS":              "#563d7c",
	"SCSS":             "#c6538c",
	"Vue":              "#41b883",
	"Svelte":           "#ff3e00",
	"Shell":            "#89e051",
	"PowerShell":       "#012456",
	"Lua":              "#000080",
	"R":                "#198CE7",
	"Scala":            "#c22d40",
	"Elixir":           "#6e4a7e",
	"Haskell":          "#5e5086",
	"Clojure":          "#db5855",
	"Objective-C":      "#438eff",
	"Jupyter Notebook": "#DA5B0B",
	"Dockerfile":       "#384d54",
	"Makefile":         "#427819",
	"MDX":              "#fcb32c",
	"Astro":            "#ff5a03",
	"Solidity":         "#AA6746",
}

// colorFor возвращает цвет отображения языка.
func colorFor(language string) string {
	if color, ok := languageColors[language]; ok {
		return color
	}
	return defaultLanguageColor
}
