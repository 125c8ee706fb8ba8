package input

import (
	"github.com/chzyer/readline"
	"github.com/dekarrin/voxcmd/internal/command"
)

// completer offers tab completion of command keywords and their arguments.
var completer = readline.NewPrefixCompleter(completionItems()...)

func completionItems() []readline.PrefixCompleterInterface {
	var blocks []readline.PrefixCompleterInterface
	for _, bk := range command.BlockKinds() {
		blocks = append(blocks, readline.PcItem(bk.String()))
	}

	return []readline.PrefixCompleterInterface{
		readline.PcItem("fly",
			readline.PcItem("true"),
			readline.PcItem("false"),
		),
		readline.PcItem("placing", blocks...),
	}
}
