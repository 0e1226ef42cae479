package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconApp    = "\U000F0169" // 󰅩
	IconSun    = "\U000F0599" // 󰖙
	IconMoon   = "\U000F0594" // 󰖔
	IconDirty  = "●"
	IconActive = "▸"
)

// Notification icons
var (
	IconNotifyInfo    = "\uf05a"
	IconNotifySuccess = "\uf058"
	IconNotifyWarning = "\uf071"
	IconNotifyError   = "\uf057"
)

// IconFileDefault is used for languages without a dedicated glyph.
var IconFileDefault = "\uf15b "

// File type icons keyed by language id.
var languageIcons = map[string]string{
	"python":     "\ue606 ",
	"java":       "\ue738 ",
	"c":          "\ue61e ",
	"cpp":        "\ue61d ",
	"csharp":     "\U000F031B ",
	"javascript": "\U000F031E ",
	"typescript": "\U000F06E6 ",
	"php":        "\ue73d ",
	"go":         "\ue627 ",
	"rust":       "\ue7a8 ",
	"sql":        "\uf1c0 ",
}

// LanguageIcon returns the nerd font glyph for a language id.
func LanguageIcon(id string) string {
	if icon, ok := languageIcons[id]; ok {
		return icon
	}
	return IconFileDefault
}
