package config

// AppName is the name of the application, used for display and paths.
const AppName = "termfolio"

// Version is the current version of the application.
// This variable can be overwritten at build time using -ldflags.
// Example: go build -ldflags "-X 'github.com/Shekhar0165/shekhar-portfolio/internal/config.Version=v1.0.0'"
var Version = "v1.0.0"
