// Package sitegen turns a tree of Markdown pages into a static HTML site.
//
// # Quick Start
//
// Convert a single page with the embedded template:
//
//	conv, err := sitegen.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, sitegen.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", result.HTML, 0644)
//
// The result carries the page title (result.Title), the HTML fragment built
// from the Markdown (result.Content) and the assembled page (result.HTML).
//
// # Conversion Pipeline
//
// Each page goes through these stages:
//
//  1. Markdown preprocessing (byte order mark, line endings, Unicode NFC)
//  2. Title extraction from the leading "# " heading
//  3. Markdown to HTML fragment, with the native engine or goldmark
//  4. Template substitution of {{ Title }} and {{ Content }}
//  5. Optional stylesheet injection
//  6. Base path rewriting of root-relative href and src values
//
// # Building a Site
//
// Site walks a content directory for index.md files and mirrors each one as
// index.html under the output directory, after copying static files:
//
//	site, err := sitegen.NewSite(sitegen.SiteConfig{
//	    ContentDir: "content",
//	    StaticDir:  "static",
//	    OutputDir:  "docs",
//	    Template:   "template.html",
//	    BasePath:   "/my-repo/",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := site.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if report.Failed() > 0 {
//	    log.Fatal(report.Err())
//	}
//
// A template.html next to an index.md overrides the site template for that
// page. Without any template file, the embedded default template is used.
//
// # Engines
//
// The native engine (default) supports headings, paragraphs, fenced code,
// quotes, lists, bold, italic, inline code, links and images. Unmatched inline
// delimiters are reported as ErrUnmatchedDelimiter. The goldmark engine
// accepts CommonMark with GFM extensions and highlighted code blocks:
//
//	conv, err := sitegen.NewConverter(sitegen.WithEngine(sitegen.EngineGoldmark))
package sitegen
