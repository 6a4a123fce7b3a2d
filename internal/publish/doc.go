// Package publish writes validated instrument descriptions out of the
// process.
//
// FileWriter persists the canonical document as the rig's standard file,
// <dir>/<prefix>instrument.json, replacing any previous file atomically.
// Publisher runs the round-trip self check and then fans the document out:
// standard file, SQLite archive, and optionally MQTT and InfluxDB.
//
//	p, err := publish.New(publish.Deps{
//	    Files:   &publish.FileWriter{Dir: cfg.Output.Dir},
//	    Archive: archive.NewSQLiteRepository(db.DB),
//	    Logger:  log,
//	})
//	res, err := p.Publish(ctx, inst)
package publish
