package main

// resolveLanguage picks the engine language: flag, then environment,
// then the OS locale, then "en". The engine canonicalizes whatever
// comes back, so a full locale like "cs_CZ.UTF-8" is fine.
func resolveLanguage(flagLang, envLang string, detect func() (string, error)) string {
	if flagLang != "" {
		return flagLang
	}
	if envLang != "" {
		return envLang
	}
	if detect != nil {
		if locale, err := detect(); err == nil && locale != "" {
			return locale
		}
	}
	return "en"
}
