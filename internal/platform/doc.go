package platform

// Package platform contains OS integration: the default download directory,
// directory creation and revealing a folder in the system file manager.
