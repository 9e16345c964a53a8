// Package phoneengine adapts github.com/nyaruka/phonenumbers to the
// phonefilter.Source interface.
//
// An Engine holds the defaults for a deployment (strict mode, default country,
// allowed countries, display language). Each validation creates an Instance
// bound to one input; the instance parses the input once and answers every
// accessor from that parse. Instances are read-only and are simply dropped
// after use.
//
// # Strict mode
//
// In strict mode only dialable characters are accepted: digits, one leading
// "+", spaces and the separators - . ( ) /. Letters, extension markers and
// anything else make the input NOT_A_NUMBER. Without strict mode the engine
// converts vanity letters ("1-800-FLOWERS") and strips extensions.
//
// # Usage
//
//	engine := phoneengine.New(
//		phoneengine.WithDefaultCountry("US"),
//		phoneengine.WithStrictMode(true),
//	)
//
//	inst := engine.Instance("(201) 555-0123", phoneengine.WithDefaultCountry("US"))
//	raw := phonefilter.Collect(inst, "(201) 555-0123")
package phoneengine
