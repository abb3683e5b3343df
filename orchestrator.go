package tem104

import "time"

// ReadAll runs the top-level "read everything" sequence: identify (if not
// already sticky), then RTC, totals and instantaneous reads, assembled
// into a Record. A ~200ms pause is applied between successive exchanges;
// some firmware revisions drop back-to-back requests, so the pauses are
// part of the wire contract rather than an optimization opportunity.
//
// Transport and frame-level failures at any step are recovered locally:
// the affected fields are left absent and ReadAll continues. Only
// ErrUnknownVariant from identification aborts the call.
func (c *Client) ReadAll() (*Record, error) {
	v := c.Variant()

	if v == VariantUnknown {
		identified, err := c.Identify()
		if err == ErrUnknownVariant {
			return nil, err
		}
		if err != nil {
			// The Identify exchange itself failed: with no variant known
			// nothing can be decoded, so every field stays absent.
			return &Record{Variant: VariantUnknown, Status: StatusPartialDecode}, nil
		}
		v = identified
		time.Sleep(identifyPostDelay)
	}

	dec := decoderFor(v)
	if dec == nil {
		return nil, ErrUnknownVariant
	}

	rec := &Record{Variant: v}

	if t, err := dec.readRTC(c); err == nil {
		rec.Time = &t
	}
	time.Sleep(interExchangeDelay)

	totals := dec.readTotals(c, rec)
	time.Sleep(interExchangeDelay)

	inst := dec.readInstantaneous(c, rec)

	rec.Status = recordStatus(totals, inst)

	return rec, nil
}

// ReadRTC runs only the variant's RTC read and returns the decoded
// timestamp, without touching totals or instantaneous blocks. Exposed for
// reuse by a polling loop that wants finer control.
func (c *Client) ReadRTC() (*Record, error) {
	v, dec, err := c.decoderForReadyClient()
	if err != nil {
		return nil, err
	}

	rec := &Record{Variant: v}
	if t, err := dec.readRTC(c); err == nil {
		rec.Time = &t
		rec.Status = StatusOk
	} else {
		rec.Status = StatusParseError
	}
	return rec, nil
}

// ReadTotals runs only the variant's totals read(s).
func (c *Client) ReadTotals() (*Record, error) {
	v, dec, err := c.decoderForReadyClient()
	if err != nil {
		return nil, err
	}

	rec := &Record{Variant: v}
	res := dec.readTotals(c, rec)
	rec.Status = recordStatus(res)
	return rec, nil
}

// ReadInstantaneous runs only the variant's instantaneous read.
func (c *Client) ReadInstantaneous() (*Record, error) {
	v, dec, err := c.decoderForReadyClient()
	if err != nil {
		return nil, err
	}

	rec := &Record{Variant: v}
	res := dec.readInstantaneous(c, rec)
	rec.Status = recordStatus(res)
	return rec, nil
}

// decoderForReadyClient identifies the peer if necessary and returns its
// variantDecoder, shared by the three single-block read methods above.
func (c *Client) decoderForReadyClient() (Variant, variantDecoder, error) {
	v := c.Variant()
	if v == VariantUnknown {
		identified, err := c.Identify()
		if err != nil {
			return VariantUnknown, nil, err
		}
		v = identified
		time.Sleep(identifyPostDelay)
	}

	dec := decoderFor(v)
	if dec == nil {
		return VariantUnknown, nil, ErrUnknownVariant
	}
	return v, dec, nil
}
