package main

import (
	"weboodi-charts/cmd/weboodi-charts/commands"
	"weboodi-charts/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
