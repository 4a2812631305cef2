// Package templates renders templ components into email bodies.
//
// Email templates can be written with Inky component tags inside .templ files:
//
//	package emails
//
//	templ Welcome(name, url string) {
//		<container>
//			<row>
//				<columns>
//					<h1>Hello { name }</h1>
//					<button href={ url } class="expand">Get started</button>
//				</columns>
//			</row>
//		</container>
//	}
//
// RenderEmail renders the component and converts the component tags to table
// markup in one step:
//
//	html, err := templates.RenderEmail(ctx, emails.Welcome("Ann", url), inky.New())
//	if err != nil {
//		return err
//	}
//
// Render returns the component output unchanged, for bodies that are already
// plain HTML.
package templates
