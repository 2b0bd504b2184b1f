package nvm

// SessionCommands switches only the receiving shell to v.
func SessionCommands(v RuntimeVersion) []string {
	return []string{"nvm use " + v.Name}
}

// DefaultCommands points the default alias at v and applies it to the
// receiving shell. Both lines are always sent; nvm's outcome is not observed.
func DefaultCommands(v RuntimeVersion) []string {
	return []string{"nvm alias default " + v.Name, "nvm use default"}
}
