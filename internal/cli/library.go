package cli

import "fmt"

// LibraryCmd lists the built-in reference exercises.
type LibraryCmd struct{}

func (c *LibraryCmd) Run(ctx *Context) error {
	for _, item := range ctx.Store.Library() {
		fmt.Printf("%s %s\n", ValueStyle.Render(item.Name), MutedStyle.Render("("+item.Muscles+")"))
		fmt.Printf("  %s\n", item.CopyText)
	}
	return nil
}
