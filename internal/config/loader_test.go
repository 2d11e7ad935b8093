package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/footballdb/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")

	convey.Convey("Given no config file and no environment", t, func() {
		cfg, err := config.Load(context.Background(), "")

		convey.Convey("Then defaults are returned", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(*cfg, convey.ShouldResemble, *config.New())
		})
	})
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "footballdb.yaml")
	yaml := "data_dir: fixtures\ndb_path: out.db\nsample_size: 5\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(yaml), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(config.EnvConfigFile, "")
	t.Setenv("FOOTBALLDB_DB_PATH", "env.db")
	t.Setenv("FOOTBALLDB_METRICS_FILE", "run.prom")

	convey.Convey("Given a YAML file and environment overrides", t, func() {
		cfg, err := config.Load(context.Background(), path)

		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then file values override defaults", func() {
			convey.So(cfg.DataDir, convey.ShouldEqual, "fixtures")
			convey.So(cfg.SampleSize, convey.ShouldEqual, 5)
			convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
		})

		convey.Convey("Then environment overrides the file", func() {
			convey.So(cfg.DBPath, convey.ShouldEqual, "env.db")
			convey.So(cfg.MetricsFile, convey.ShouldEqual, "run.prom")
		})
	})
}

func TestLoad_ConfigFileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "footballdb.yaml")
	if err := os.WriteFile(path, []byte("sample_size: 10\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvConfigFile, path)

	convey.Convey("Given FOOTBALLDB_CONFIG points at a file", t, func() {
		cfg, err := config.Load(context.Background(), "")

		convey.So(err, convey.ShouldBeNil)
		convey.So(cfg.SampleSize, convey.ShouldEqual, 10)
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")

	convey.Convey("Given a config file that does not exist", t, func() {
		_, err := config.Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))

		convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
	})

	convey.Convey("Given an environment value that fails validation", t, func() {
		t.Setenv("FOOTBALLDB_SAMPLE_SIZE", "-2")
		_, err := config.Load(context.Background(), "")

		convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("FOOTBALLDB_LOG_LEVEL=warn\nFOOTBALLDB_DB_PATH=dotenv.db\n"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(config.EnvConfigFile, "")
	t.Setenv("FOOTBALLDB_LOG_LEVEL", "")
	if err := os.Unsetenv("FOOTBALLDB_LOG_LEVEL"); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOOTBALLDB_DB_PATH", "already-set.db")

	convey.Convey("Given a .env file", t, func() {
		err := config.LoadDotEnv(envFile)
		convey.So(err, convey.ShouldBeNil)

		cfg, err := config.Load(context.Background(), "")
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then unset variables are filled from it", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
		})

		convey.Convey("Then variables already set win", func() {
			convey.So(cfg.DBPath, convey.ShouldEqual, "already-set.db")
		})
	})

	convey.Convey("Given no .env file", t, func() {
		err := config.LoadDotEnv(filepath.Join(dir, "missing.env"))

		convey.So(err, convey.ShouldBeNil)
	})

	convey.Convey("Given a path that cannot be read as a file", t, func() {
		err := config.LoadDotEnv(dir)

		convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
	})
}
