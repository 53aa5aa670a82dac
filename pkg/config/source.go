package config

//go:generate go run github.com/dmarkham/enumer -type Source -trimprefix Source -transform lower -json -yaml -output source.gen.go

// Source identifies where a configuration value came from.
type Source int

const (
	SourceDefault Source = iota
	SourceEnvironment
	SourceFile
)
