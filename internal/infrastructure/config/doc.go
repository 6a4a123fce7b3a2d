// Package config handles loading and validating rigdesc configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables (RIGDESC_*)
//   - Validation of required fields
//   - Default value handling
//
// Sensitive values (MQTT password, InfluxDB token, JWT secret) should be
// set through environment variables rather than the config file.
//
// Usage:
//
//	cfg, err := config.Load("configs/rigdesc.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Output.Dir)
package config
