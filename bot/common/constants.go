package common

// Embed color constants
const (
	ColorPrimary = 0x206694 // Dark blue, default embed color
	ColorSuccess = 0x2ECC71 // Green
	ColorDanger  = 0xE74C3C // Red
	ColorWarning = 0xE67E22 // Orange
	ColorForce   = 0x71368A // Dark purple, admin force actions
	ColorRemoval = 0x992D22 // Dark red, role removal
)

// Discord API size limits
const (
	MaxContentLength    = 2000 // Message content
	MaxFields           = 25   // Fields per embed
	MaxFieldValueLength = 1024 // Single field value
	MaxEmbedLength      = 6000 // Whole embed: title, description, footer, author, fields
)
