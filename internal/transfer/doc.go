// Package transfer resolves SoapUI property transfers into extraction plus
// write code for the Postman sandbox.
//
// The source side is extracted per its path language (response text for
// xpath, parsed response for jsonpath, stored step variables otherwise). The
// target side is classified by request-construction keywords: header writes
// upsert by key, query writes rewrite the request URL, everything else lands
// in the variable store with a dotted deep-set and a flattened-key fallback.
package transfer
