package mcpserver

// ContentFormatContract describes the post format that LLM consumers must
// follow when creating or updating library content.
const ContentFormatContract = `# Socceo Content Format Contract

Every post in the Socceo content library MUST follow these rules.

## Post kinds

- **insight**: a free-form article. Carries a plain formatted-text body.
- **framework**: a structured methodology write-up. Carries a structured
  body: what the framework is, a practical case (title, advantages,
  limitations, conclusion, real-world case), and optional related
  frameworks.

A post has exactly one kind; the kind decides which body shape and which
category set applies.

## Categories

Categories are partitioned by kind. Pick exactly one from the matching
list:

- insight: Estratégia, Inovação, Gestão, Mercado
- framework: Diagnóstico, Planejamento, Execução, Crescimento

The ` + "`tag`" + ` field always equals ` + "`category`" + `; it is written
automatically and must never be set to anything else.

## Fields

- ` + "`title`" + `: REQUIRED. Display title; the URL slug is derived from
  it (lowercased, diacritics stripped, spaces become hyphens).
- ` + "`description`" + `: REQUIRED. One- or two-sentence summary.
- ` + "`category`" + `: REQUIRED. From the kind's list above.
- ` + "`date`" + `: display string (e.g. "12 Mar 2025"), not parsed.
- ` + "`read_time`" + `: optional display string (e.g. "8 min").
- ` + "`content`" + ` / ` + "`what_is`" + `: the body text for insights /
  frameworks respectively.

## Style

1. Content language is Portuguese (pt-BR).
2. Paragraphs are separated by blank lines; no HTML.
3. Titles use sentence casing as written, never ALL CAPS.
4. Keep descriptions under 200 characters.
`
