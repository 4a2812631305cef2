// Package inky converts semantic email markup into the nested tables that
// legacy email clients need for layout.
//
// Templates are written with a small fixed vocabulary of custom tags:
//
//	<container>
//		<row>
//			<columns small="12" large="6">Left</columns>
//			<columns small="12" large="6">Right</columns>
//		</row>
//		<button href="https://example.com" class="expand">Open</button>
//	</container>
//
// and converted to table markup that renders the same way in every client.
//
// # Rendering One Element
//
// Render is the per-element engine. It resolves the element's tag through a
// Registry and returns the table markup for that component:
//
//	doc, err := inky.Parse(`<row class="collapse">cell</row>`)
//	if err != nil {
//		return err
//	}
//	reg := inky.DefaultRegistry()
//	out, err := inky.Render(doc.Children()[0], reg, inky.NewGridColumns(12, reg))
//	// <table class="row collapse"><tbody><tr>cell</tr></tbody></table>
//
// Tags outside the registry are kept as they are, wrapped in a table cell.
// Render never modifies the element it is given.
//
// # Converting Documents
//
// Inky walks a whole document and renders components until none are left:
//
//	converter := inky.New(
//		inky.WithColumnCount(16),
//		inky.WithLogger(log),
//	)
//	html, err := converter.Transform(ctx, source)
//
// Components are processed outermost first and the output of each step is
// parsed back into the document. A vertical menu, for example, emits its items
// marked with data-vertical, and those items are rendered in later steps.
//
// # Custom Tag Names
//
// The tag for each component comes from the registry. NewRegistry validates
// that every component has exactly one tag:
//
//	reg, err := inky.NewRegistry(map[inky.Component]string{
//		inky.Columns: "col",
//		inky.Row:     "row",
//		// ... every other component
//	})
//
// Config reads the same mapping from INKY_TAG_* environment variables.
package inky
