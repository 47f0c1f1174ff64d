package masking

// builtinPattern is a named regex with its canonical replacement. Patterns
// are applied in slice order: structural patterns (certificates) run before
// the generic key/value ones so a PEM block is not shredded by them.
type builtinPattern struct {
	name        string
	pattern     string
	replacement string
}

// builtinPatterns covers the credential shapes that show up in agent
// transcripts. Email and bare-base64 matchers are deliberately absent:
// conversation logs legitimately contain both.
var builtinPatterns = []builtinPattern{
	{
		name:        "certificate",
		pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
		replacement: `__MASKED_CERTIFICATE__`,
	},
	{
		name:        "ssh_key",
		pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
		replacement: `__MASKED_SSH_KEY__`,
	},
	{
		name:        "aws_access_key",
		pattern:     `(?i)(?:aws[_-]?access[_-]?key[_-]?id)["']?\s*[:=]\s*["']?(AKIA[A-Z0-9]{16})["']?`,
		replacement: `"aws_access_key_id": "__MASKED_AWS_KEY__"`,
	},
	{
		name:        "aws_secret_key",
		pattern:     `(?i)(?:aws[_-]?secret[_-]?access[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`,
		replacement: `"aws_secret_access_key": "__MASKED_AWS_SECRET__"`,
	},
	{
		name:        "github_token",
		pattern:     `(?i)gh[ps]_[A-Za-z0-9_]{36,255}`,
		replacement: `__MASKED_GITHUB_TOKEN__`,
	},
	{
		name:        "slack_token",
		pattern:     `(?i)xox[baprs]-[A-Za-z0-9-]{10,72}`,
		replacement: `__MASKED_SLACK_TOKEN__`,
	},
	{
		name:        "api_key",
		pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
		replacement: `"api_key": "__MASKED_API_KEY__"`,
	},
	{
		name:        "token",
		pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		replacement: `"token": "__MASKED_TOKEN__"`,
	},
	{
		name:        "private_key",
		pattern:     `(?i)(?:private[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		replacement: `"private_key": "__MASKED_PRIVATE_KEY__"`,
	},
	{
		name:        "secret_key",
		pattern:     `(?i)(?:secret[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
	},
	{
		name:        "password",
		pattern:     `(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
		replacement: `"password": "__MASKED_PASSWORD__"`,
	},
}
