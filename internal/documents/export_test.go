package documents

var (
	AssemblePage     = assemblePage
	BuildStorageKey  = buildStorageKey
	SanitizeFilename = sanitizeFilename
)
