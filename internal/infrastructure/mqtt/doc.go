// Package mqtt publishes rigdesc instrument documents to an MQTT broker.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Retained publishing of the latest document and digest per instrument
//   - Last Will and Testament (LWT) for offline detection
//
// Subscribers follow rigdesc/instrument/+/document to receive every
// instrument's current description as soon as it is written.
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT, mqtt.Topics{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.PublishDocument(ctx, "Nikon2P.1", data, digest)
package mqtt
