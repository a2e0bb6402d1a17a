package main

import (
	"context"

	"github.com/penguinistakc/datalab/cmd/datalab/commands"
	"github.com/penguinistakc/datalab/lib/serviceutil"
	"github.com/penguinistakc/datalab/lib/telemetry"
)

func main() {
	ctx := context.Background()

	tel, err := telemetry.SetupFromEnv(ctx, "datalab")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer tel.Shutdown(ctx)

	commands.ExecuteContext(ctx)
}
