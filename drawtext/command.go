package drawtext

// Assemble builds the full argument list around a filter expression.
// An empty outputPath selects a live ffplay preview; otherwise ffmpeg
// converts, copying the audio track through untouched. The expression
// is wrapped in one pair of double quotes so it survives as a single
// token: it carries the ','/':' syntax of the filter grammar itself.
func Assemble(inputPath, outputPath, expr string, overwrite bool) []string {
	argv := make([]string, 0, 10)

	if outputPath == "" {
		argv = append(argv, "ffplay")
	} else {
		argv = append(argv, "ffmpeg")
		if overwrite {
			argv = append(argv, "-y")
		}
	}

	argv = append(argv, "-i", inputPath, "-vf", `"`+expr+`"`)

	if outputPath != "" {
		argv = append(argv, "-codec:a", "copy", outputPath)
	}
	return argv
}
