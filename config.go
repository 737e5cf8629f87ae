package contentrecord

import "github.com/goliatone/go-contentrecord/internal/runtimeconfig"

var (
	ErrParserTypesInvalid       = runtimeconfig.ErrParserTypesInvalid
	ErrCorpusPatternInvalid     = runtimeconfig.ErrCorpusPatternInvalid
	ErrCorpusConcurrencyInvalid = runtimeconfig.ErrCorpusConcurrencyInvalid
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	ParserConfig  = runtimeconfig.ParserConfig
	CorpusConfig  = runtimeconfig.CorpusConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
