package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render %NAME% templates from JSON fields"
	MsgRenderShort     = "Render templates with fields from a JSON or YAML file"
	MsgFieldsShort     = "Print the flattened field list of a JSON or YAML file"
	MsgPlanShort       = "Show where every template would be rendered"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgRootLong = `templatize flattens a JSON document into ordered NAME=value fields and
replaces every %NAME% placeholder in a set of template files with the
matching value. Templates come from a manifest (JSON, JSONC, YAML or TOML)
or from a directory scanned recursively. Each rendered file keeps the
permission bits of its source.`

	MsgRenderLong = `Render loads the fields file, builds the template collection from --manifest
or --dir and writes every rendered template. Fields are applied in document
order, so a value containing %OTHER% can be expanded by a later field.

With --env each field value is first looked up as an environment variable
name and the variable's value is substituted when it exists.`

	MsgCompletionLong = `Generate a completion script for the given shell and print it to stdout.`

	// Status messages
	MsgDryRunNotice   = "DRY RUN MODE - No files were written"
	MsgRenderedFormat = "Rendered %d template(s)\n"
	MsgNoTemplates    = "No templates found."
	MsgPlanItemFormat = "%s -> %s"
	MsgPlanEnvTag     = " [env]"
	MsgPlanSkipTag    = " [skip]"

	// Error messages
	MsgErrNoSource      = "one of --manifest or --dir is required"
	MsgErrBothSources   = "--manifest and --dir cannot be used together"
	MsgErrNoFields      = "--fields is required"
	MsgErrUnknownFormat = "unknown output format %q (want text, json, yaml or toml)"
	MsgErrLoadConfig    = "failed to load configuration"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Render into memory without writing any file"
	MsgFlagConfig   = "Path to a config file (default $XDG_CONFIG_HOME/templatize/config.toml)"
	MsgFlagManifest = "Manifest describing the templates (.json, .jsonc, .yaml, .yml, .toml)"
	MsgFlagDir      = "Directory whose files are all rendered in place"
	MsgFlagFields   = "JSON or YAML file holding the fields (- for stdin)"
	MsgFlagEnv      = "Resolve every field value as an environment variable name"
	MsgFlagFormat   = "Output format: text, json, yaml or toml"
)
