package main

// Run executes the url command.
func (c *URLCmd) Run(deps *Dependencies) error {
	return printResult(deps, deps.Session.ExtractFromURL(deps.Ctx, c.URL))
}
