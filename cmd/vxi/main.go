/*
Vxi starts an interactive voxcmd console.

It reads commands from stdin, one per line, and applies each to the player,
printing what changed to stdout. Lines that are not valid commands are reported
with the position of the problem and the words that would have been accepted
there. The console runs until the end of input (Ctrl-D at a terminal).

Usage:

	vxi [flags]

The flags are:

	-v, --version
		Give the current version of voxcmd and then exit.

	-c, --config FILE
		Use the given TOML config file. Defaults to "voxcmd.toml" in the
		current working directory; if that file does not exist, built-in
		defaults are used.

	-s, --state FILE
		Load the player state from FILE at start and save it there at exit.
		Overrides the "state" key of the config file.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input even if launched in
		a tty with stdin and stdout.

	-V, --verbose
		Log details about configuration and state handling to stderr.

The commands are:

	fly true|false
		Turn flying on or off.

	placing BLOCK
		Choose the block to place. BLOCK is one of stone, dirt, grass, sand,
		brick, or glass.
*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dekarrin/voxcmd"
	"github.com/dekarrin/voxcmd/internal/config"
	"github.com/dekarrin/voxcmd/internal/version"
	"github.com/spf13/pflag"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem while running the console.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an issue
	// initializing the engine.
	ExitInitError
)

var (
	returnCode  int = ExitSuccess
	flagVersion     = pflag.BoolP("version", "v", false, "Give the current version of voxcmd and then exit.")
	flagConfig      = pflag.StringP("config", "c", "voxcmd.toml", "Use the given TOML config file.")
	flagState       = pflag.StringP("state", "s", "", "Load player state from and save it to the given file.")
	flagDirect      = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline.")
	flagVerbose     = pflag.BoolP("verbose", "V", false, "Log configuration and state handling to stderr.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic("unrecoverable panic occured")
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	log.SetPrefix("vxi: ")
	log.SetFlags(log.Ltime)
	if !*flagVerbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s: %s\n", *flagConfig, err.Error())
		returnCode = ExitInitError
		return
	}
	log.Printf("config loaded from %q (or defaults if absent)", *flagConfig)

	if pflag.Lookup("state").Changed {
		cfg.State = *flagState
	}
	if cfg.State != "" {
		log.Printf("player state file is %q", cfg.State)
	}

	eng, initErr := voxcmd.New(os.Stdin, os.Stdout, cfg, *flagDirect)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer eng.Close()
	log.Printf("starting with %+v", eng.Player().State())

	err = eng.RunUntilQuit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
		return
	}
	log.Printf("finished with %+v", eng.Player().State())
}
