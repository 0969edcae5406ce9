package main

import (
	"context"

	"github.com/locvowork/case_upload_template/internal/bootstrap"
	"github.com/locvowork/case_upload_template/internal/cli"
	"github.com/locvowork/case_upload_template/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := cli.NewRootCommand(app).ExecuteContext(ctx); err != nil {
		logger.FatalLog(ctx, "%v", err)
	}
}
