// Package config loads the landing server configuration.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional landing.json file and LANDING_* environment variables (nested
// keys join with '_', e.g. LANDING_SERVER_PORT=9090).
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "0.0.0.0",
//	    "port": 8080,
//	    "max_sessions": 10000,
//	    "allowed_origins": ["https://babysense.example"]
//	  },
//	  "session": {
//	    "heartbeat_interval": "30s",
//	    "read_timeout": "60s"
//	  },
//	  "ui": {
//	    "rotate_interval": "4s",
//	    "reveal_margin": 100
//	  },
//	  "assets": {
//	    "source": "s3",
//	    "s3": {"bucket": "babysense-site", "region": "us-east-1", "prefix": "public/"}
//	  },
//	  "log": {"level": "info", "format": "json"},
//	  "metrics": {
//	    "enabled": true,
//	    "path": "/metrics",
//	    "namespace": "landing",
//	    "labels": {"env": "prod"}
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    errors.PrintError(os.Stderr, err)
//	    os.Exit(1)
//	}
//	logger := cfg.Log.NewLogger(os.Stderr)
package config
