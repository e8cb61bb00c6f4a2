// Command migrate applies migrations/ to the configured database with the atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"gin-hotel-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	bin := flag.String("atlas", "atlas", "atlas binary")
	flag.Parse()

	if err := run(context.Background(), *dir, *bin); err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dir, bin string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: cfg.DB.BuildDSN(),
	})
	if err != nil {
		return err
	}

	slog.Info("マイグレーション実行完了", "applied", len(res.Applied), "current", res.Current)
	return nil
}
