// Package tailwindcli runs the Tailwind CSS standalone CLI without requiring
// it to be installed on the machine.
//
// The upstream prebuilt binaries are embedded in the compiled artifact, one
// per supported platform. On every [Run] call the binary matching the running
// platform is written to a uniquely named temporary file, marked executable,
// invoked with the given arguments, and deleted again once the process has
// exited; both output streams are captured in full and returned trimmed.
//
// example usage
//
//	out, err := tailwindcli.Run(
//		context.Background(),
//		[]string{"--input", "src/main.css", "--output", "dist/built.css", "--minify"},
//	)
//	if err != nil {
//		var exit *tailwindcli.ExitError
//		if errors.As(err, &exit) {
//			// the tool itself rejected the invocation; its stderr says why
//			log.Fatalf("tailwindcss failed: %s", exit.Stderr)
//		}
//		log.Fatal(err)
//	}
//	fmt.Println(out.Stdout)
//
// A call is synchronous end to end and applies no timeout of its own; bound
// it with the context if the caller needs bounded latency. Concurrent calls
// are independent, each one owns its own temporary file.
package tailwindcli
