// Package autonbsp prevents typographically bad line breaks by rewriting
// eligible spaces into non-breaking-space markers.
//
// # Quick Start
//
// Build an engine for a language and run it over text or HTML:
//
//	engine, err := autonbsp.New("cs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(engine.Replace("Šel k domu č. 5 a zpět."))
//	// Šel k&nbsp;domu č.&nbsp;5&nbsp;a&nbsp;zpět.
//
// Replace is pure and the engine is safe for concurrent use, so one
// instance per configuration can serve a whole process.
//
// # Substitution Passes
//
// Replace runs these passes in fixed order, each on the previous
// pass's output:
//
//  1. after words: short prepositions, conjunctions, articles, titles
//     before a name and abbreviations keep the following word attached
//  2. before words: titles after a name keep the name attached
//  3. before months: "10. ledna" style dates
//  4. after numbers: a lone digit binds to the following word
//  5. between numbers: digit groups such as "1 000 000" bind together
//  6. before units: "5 m", "230 V", "100 %"
//
// Rule tokens come from built-in per-language lists (cs, sk, en, de)
// plus a wildcard list applied to every language. Caller overrides are
// merged in additively.
//
// # Configuration
//
// Functional options customize an engine:
//
//	engine, err := autonbsp.New("en",
//	    autonbsp.WithMarker(autonbsp.MarkerRune),
//	    autonbsp.WithFeatures(autonbsp.Features{Articles: true}),
//	    autonbsp.WithRules(autonbsp.RuleSet{
//	        "en": {autonbsp.CategoryUnits: {"pcs"}},
//	    }),
//	)
//
// The default marker is the &nbsp; entity; MarkerRune gives the literal
// U+00A0 for plain-text pipelines, and WithDebug highlights every
// replacement for visual inspection.
//
// # Markup Safety
//
// Input may contain HTML. The engine splits it into text and markup
// segments and rewrites text only: nothing inside a tag, comment, or a
// script, style, pre, code or textarea element is ever touched.
//
// # Caching
//
// Hosts that derive configuration per request can keep compiled engines
// in an EngineCache:
//
//	cache := autonbsp.NewEngineCache()
//	engine, err := cache.Get("cs|debug", func() (*autonbsp.Engine, error) {
//	    return autonbsp.New("cs", autonbsp.WithDebug())
//	})
package autonbsp
