package i18next

import (
	"encoding/json"
	"fmt"
	"maps"
	"strings"
)

// htmlEscaper uses the entity set i18next-compatible consumers expect.
// html.EscapeString differs for quotes and does not escape "/".
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// EscapeHTML escapes a substituted value for safe inclusion in HTML output.
// It is the default escape function.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// interpolate replaces {{name}} and {{name, format}} tokens in the template
// with values from the variable bag. The contract is all-or-nothing: a single
// unresolvable token (missing variable, empty token, unregistered or failing
// format) fails the whole template.
func interpolate(template string, variables M, locale string, opts *Options) (string, error) {
	var b strings.Builder
	rest := template

	for {
		start := strings.Index(rest, opts.InterpolationPrefix)
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.Index(rest[start+len(opts.InterpolationPrefix):], opts.InterpolationSuffix)
		if end < 0 {
			// Unterminated token, leave the tail as-is.
			b.WriteString(rest)
			break
		}

		b.WriteString(rest[:start])
		token := rest[start+len(opts.InterpolationPrefix) : start+len(opts.InterpolationPrefix)+end]
		rest = rest[start+len(opts.InterpolationPrefix)+end+len(opts.InterpolationSuffix):]

		// {{- name}} opts out of escaping for this token only.
		raw := false
		if opts.UnescapePrefix != "" && strings.HasPrefix(token, opts.UnescapePrefix) {
			raw = true
			token = token[len(opts.UnescapePrefix):]
		}

		name, formatName, hasFormat := strings.Cut(token, ",")
		name = strings.TrimSpace(name)
		formatName = strings.TrimSpace(formatName)

		if name == "" {
			return "", fmt.Errorf("%w in %q", ErrEmptyToken, template)
		}

		value, ok := variables[name]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrMissingVariable, name)
		}

		text := stringify(value)
		if hasFormat {
			if formatName == "" {
				return "", fmt.Errorf("%w in %q", ErrEmptyToken, template)
			}
			format, ok := opts.Formats[formatName]
			if !ok {
				return "", fmt.Errorf("%w: %q", ErrUnknownFormat, formatName)
			}
			formatted, err := format(value, locale, opts)
			if err != nil {
				return "", fmt.Errorf("%w: %q: %v", ErrFormatFailed, formatName, err)
			}
			text = formatted
		}

		if opts.EscapeValue && !raw && opts.EscapeFunc != nil {
			text = opts.EscapeFunc(text)
		}

		b.WriteString(text)
	}

	return b.String(), nil
}

// nestFunc resolves a nested key against the merged variable bag. Returning
// an error fails the enclosing render.
type nestFunc func(key string, variables M) (string, error)

// nest replaces $t(key) and $t(key, {json}) tokens via the resolve callback.
// Inline JSON option values are resolved against the outer variables first,
// then merged over them (inner keys winning) for the nested call. The same
// all-or-nothing policy as interpolation applies.
func nest(template string, variables M, locale string, opts *Options, resolve nestFunc) (string, error) {
	var b strings.Builder
	rest := template

	for {
		start := strings.Index(rest, opts.NestingPrefix)
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.Index(rest[start+len(opts.NestingPrefix):], opts.NestingSuffix)
		if end < 0 {
			b.WriteString(rest)
			break
		}

		b.WriteString(rest[:start])
		token := rest[start+len(opts.NestingPrefix) : start+len(opts.NestingPrefix)+end]
		rest = rest[start+len(opts.NestingPrefix)+end+len(opts.NestingSuffix):]

		key, rawOpts, hasOpts := strings.Cut(token, ",")
		key = strings.TrimSpace(key)
		if key == "" {
			return "", fmt.Errorf("%w in %q", ErrEmptyToken, template)
		}

		merged := variables
		if hasOpts {
			overrides, err := parseNestingOptions(rawOpts, variables, locale, opts)
			if err != nil {
				return "", err
			}
			merged = make(M, len(variables)+len(overrides))
			maps.Copy(merged, variables)
			maps.Copy(merged, overrides)
		}

		replaced, err := resolve(key, merged)
		if err != nil {
			return "", err
		}
		b.WriteString(replaced)
	}

	return b.String(), nil
}

// parseNestingOptions decodes the inline JSON options of a nesting token.
// Any {{var}} placeholders inside it are substituted from the outer variables
// first, without escaping. Numbers are decoded as json.Number so integral
// counts stay pluralization-active.
func parseNestingOptions(raw string, variables M, locale string, opts *Options) (M, error) {
	if strings.Contains(raw, opts.InterpolationPrefix) {
		plain := *opts
		plain.EscapeValue = false
		interpolated, err := interpolate(raw, variables, locale, &plain)
		if err != nil {
			return nil, err
		}
		raw = interpolated
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var overrides M
	if err := dec.Decode(&overrides); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNestingOptions, strings.TrimSpace(raw))
	}

	return overrides, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
