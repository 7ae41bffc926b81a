package telemetry

// NewTracerProviderWith exposes newTracerProviderWith to the external test package.
var NewTracerProviderWith = newTracerProviderWith
