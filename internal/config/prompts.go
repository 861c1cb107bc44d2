package config

// Built-in judgment prompts. The YAML file overrides these; keeping them in
// code means the evaluator works without any config on disk.

const defaultRelevancePrompt = `Evaluate the relevance of the following context to the query.

Query: {{.Query}}

Context: {{.Context}}

Rate the relevance on a scale of 0.0 to 1.0, where:
- 1.0 = Highly relevant, directly answers the query
- 0.5 = Somewhat relevant, partially addresses the query
- 0.0 = Not relevant, does not address the query

Respond ONLY in raw JSON with no markdown, no code blocks, no explanation outside the JSON:
{"score": <float between 0.0 and 1.0>, "explanation": "<brief explanation of the score>", "key_points": ["<list of key points from context>"]}`

const defaultCompletenessPrompt = `Evaluate the completeness of the following context in answering the query.

Query: {{.Query}}

Context: {{.Context}}

Rate the completeness on a scale of 0.0 to 1.0, where:
- 1.0 = Complete answer, all aspects covered
- 0.5 = Partial answer, some aspects missing
- 0.0 = Incomplete answer, major aspects missing

Respond ONLY in raw JSON with no markdown, no code blocks, no explanation outside the JSON:
{"score": <float between 0.0 and 1.0>, "explanation": "<brief explanation>", "missing_aspects": ["<list of missing aspects if any>"]}`
