package project

// Name is the name reported to MCP clients
const Name = "calc-mcp"

// Version is overridden at build time with -ldflags "-X ..."
var Version = "0.1.0"
