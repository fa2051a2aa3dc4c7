package comment

import "path/filepath"

// The closed set of comment styles.
var (
	// Plain has no comment syntax at all; used for text files, sidecar
	// .license files, and any unmapped extension.
	Plain = Style{Name: "plain"}

	// Line is the C-family single-line comment style.
	Line = Style{Name: "line", Prefix: "// "}

	// Hash is the shell/Python comment style.
	Hash = Style{Name: "hash", Prefix: "# "}

	// DoubleDash is the SQL/Haskell/Lua comment style.
	DoubleDash = Style{Name: "dashes", Prefix: "-- "}

	// Block is the C-family block comment style.
	Block = Style{Name: "block", Start: "/*", End: "*/"}

	// Markup is the XML/HTML/Markdown comment style.
	Markup = Style{Name: "markup", Start: "<!--", End: "-->"}
)

// styles indexes the styles by name for config lookups.
var styles = map[string]Style{
	Plain.Name:      Plain,
	Line.Name:       Line,
	Hash.Name:       Hash,
	DoubleDash.Name: DoubleDash,
	Markup.Name:     Markup,
	Block.Name:      Block,
}

// ByName returns the style with the given name.
func ByName(name string) (Style, bool) {
	s, ok := styles[name]
	return s, ok
}

// Names returns the known style names, for flag help and validation
// messages. The order is fixed.
func Names() []string {
	return []string{Plain.Name, Line.Name, Hash.Name, DoubleDash.Name, Block.Name, Markup.Name}
}

// styleByExtension maps a file extension (without the leading dot, case as
// stored) to its comment style. Unmapped extensions fall back to Plain.
var styleByExtension = map[string]Style{
	// C family and friends
	"c": Line, "cc": Line, "cpp": Line, "cxx": Line,
	"h": Line, "hh": Line, "hpp": Line,
	"cs": Line, "fs": Line, "fsx": Line,
	"go": Line, "java": Line, "kt": Line, "kts": Line,
	"js": Line, "jsx": Line, "ts": Line, "tsx": Line,
	"rs": Line, "scala": Line, "swift": Line, "dart": Line,
	"php": Line, "proto": Line, "groovy": Line, "zig": Line,

	// Hash-commented
	"py": Hash, "rb": Hash, "pl": Hash, "pm": Hash,
	"sh": Hash, "bash": Hash, "zsh": Hash, "fish": Hash,
	"yaml": Hash, "yml": Hash, "toml": Hash,
	"mk": Hash, "cmake": Hash, "tcl": Hash,
	"r": Hash, "jl": Hash, "nim": Hash, "ex": Hash, "exs": Hash,
	"ps1": Hash, "tf": Hash, "nix": Hash, "dockerfile": Hash,

	// Double-dash
	"sql": DoubleDash, "hs": DoubleDash, "lhs": DoubleDash,
	"lua": DoubleDash, "elm": DoubleDash,
	"adb": DoubleDash, "ads": DoubleDash,
	"vhd": DoubleDash, "vhdl": DoubleDash,

	// Block-only
	"css": Block,

	// Markup
	"xml": Markup, "html": Markup, "htm": Markup, "xhtml": Markup,
	"svg": Markup, "md": Markup, "markdown": Markup,
	"xsl": Markup, "xslt": Markup,
	"csproj": Markup, "fsproj": Markup, "vbproj": Markup,
	"props": Markup, "targets": Markup, "resx": Markup,
}

// ForExtension returns the style for a file extension, given without the
// leading dot. Unknown extensions map to Plain.
func ForExtension(ext string) Style {
	if s, ok := styleByExtension[ext]; ok {
		return s
	}
	return Plain
}

// ForPath returns the style for a file path based on its extension.
func ForPath(path string) Style {
	ext := filepath.Ext(path)
	if ext == "" {
		return Plain
	}
	return ForExtension(ext[1:])
}
