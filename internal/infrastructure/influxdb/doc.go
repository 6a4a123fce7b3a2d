// Package influxdb records rigdesc activity in InfluxDB.
//
// Every standard file written produces an instrument_documents point (tagged
// by instrument_id, with size, component count and digest fields), and
// every validation produces an instrument_validations point tagged with the
// failed invariant, if any. Dashboards use these to spot rigs whose
// descriptions stop validating.
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WriteDocument(influxdb.DocumentWrite{InstrumentID: "Nikon2P.1", Bytes: len(data)})
//
// Writes are non-blocking and batched according to batch_size and
// flush_interval. Batch errors are delivered through SetOnError.
package influxdb
