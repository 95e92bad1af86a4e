package contract

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"

	"forestlab/sdk"
)

// Records are persisted as deterministic binary blobs: fixed-width big-endian
// integers, varint lengths, one presence byte per flag. Same record, same
// bytes, on every platform.

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeUint16 keeps basis-point fields at their storage width.
func (w *binWriter) writeUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress canonicalizes the address before writing.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

// writeMint just dumps the identifier string, nothing fancy but consistent.
func (w *binWriter) writeMint(m sdk.Mint) {
	w.writeString(m.String())
}

// writeAddressList prefixes the count then each entry in stored order.
func (w *binWriter) writeAddressList(list []sdk.Address) {
	w.writeVarUint(uint64(len(list)))
	for _, a := range list {
		w.writeAddress(a)
	}
}

type binReader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *binReader { return &binReader{data: data} }

var errShortBuffer = errors.New("truncated record")

func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errShortBuffer
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	return b != 0, err
}

func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errShortBuffer
	}
	v := binary.BigEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	return int64(v), err
}

func (r *binReader) readUint16() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, errShortBuffer
	}
	v := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *binReader) readVarUint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errShortBuffer
	}
	r.pos += n
	return v, nil
}

func (r *binReader) readString() (string, error) {
	n, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(n) > len(r.data) {
		return "", errShortBuffer
	}
	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	return sdk.Address(s), err
}

func (r *binReader) readMint() (sdk.Mint, error) {
	s, err := r.readString()
	return sdk.Mint(s), err
}

func (r *binReader) readAddressList() ([]sdk.Address, error) {
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	out := make([]sdk.Address, 0, count)
	for i := uint64(0); i < count; i++ {
		a, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// Platform
// -----------------------------------------------------------------------------

// EncodePlatform serializes the registry singleton.
func EncodePlatform(p *Platform) []byte {
	w := newWriter()
	w.writeAddress(p.Authority)
	w.writeAddress(p.AdminWallet)
	w.writeUint16(p.PlatformFee)
	w.writeUint64(p.MinStakeAmount)
	w.writeBool(p.IsActive)
	w.writeUint64(p.TotalProjects)
	w.writeUint64(p.TotalStaked)
	w.writeInt64(p.CreatedAt)
	return w.bytes()
}

// DecodePlatform rehydrates the registry singleton.
func DecodePlatform(data []byte) (*Platform, error) {
	r := newReader(data)
	p := &Platform{}
	var err error
	if p.Authority, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.AdminWallet, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.PlatformFee, err = r.readUint16(); err != nil {
		return nil, err
	}
	if p.MinStakeAmount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.IsActive, err = r.readBool(); err != nil {
		return nil, err
	}
	if p.TotalProjects, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.TotalStaked, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return p, nil
}

// -----------------------------------------------------------------------------
// Project
// -----------------------------------------------------------------------------

// EncodeProject serializes a project ledger record.
func EncodeProject(p *Project) []byte {
	w := newWriter()
	w.writeAddress(p.Creator)
	w.writeString(p.Name)
	w.writeString(p.Symbol)
	w.writeString(p.Description)
	w.writeString(p.Website)
	w.writeString(p.ImageURI)
	w.writeUint64(p.FundingGoal)
	w.writeUint64(p.FundsRaised)
	w.writeUint64(p.SupportersCount)
	w.writeMint(p.ReceiptMint)
	w.buf.WriteByte(byte(p.Status))
	w.writeInt64(p.CreatedAt)
	w.writeInt64(p.EndTime)
	w.writeBool(p.FundsClaimed)
	w.writeUint16(p.ManagerFee)
	w.writeAddress(p.PayoutWallet)
	w.writeUint16(p.ApyEstimate)
	w.writeUint64(p.TotalRewards)
	return w.bytes()
}

// DecodeProject rehydrates a project ledger record.
func DecodeProject(data []byte) (*Project, error) {
	r := newReader(data)
	p := &Project{}
	var err error
	if p.Creator, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Symbol, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Website, err = r.readString(); err != nil {
		return nil, err
	}
	if p.ImageURI, err = r.readString(); err != nil {
		return nil, err
	}
	if p.FundingGoal, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.FundsRaised, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.SupportersCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.ReceiptMint, err = r.readMint(); err != nil {
		return nil, err
	}
	status, err := r.readByte()
	if err != nil {
		return nil, err
	}
	p.Status = ProjectStatus(status)
	if p.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.EndTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.FundsClaimed, err = r.readBool(); err != nil {
		return nil, err
	}
	if p.ManagerFee, err = r.readUint16(); err != nil {
		return nil, err
	}
	if p.PayoutWallet, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.ApyEstimate, err = r.readUint16(); err != nil {
		return nil, err
	}
	if p.TotalRewards, err = r.readUint64(); err != nil {
		return nil, err
	}
	return p, nil
}

// -----------------------------------------------------------------------------
// StakePosition
// -----------------------------------------------------------------------------

// EncodeStakePosition serializes a participant's position in a project.
func EncodeStakePosition(p *StakePosition) []byte {
	w := newWriter()
	w.writeAddress(p.Participant)
	w.writeUint64(p.ProjectID)
	w.writeUint64(p.InitialStake)
	w.writeUint64(p.UnitBalance)
	w.writeInt64(p.FirstStakeTime)
	w.writeInt64(p.LastStakeTime)
	w.writeUint64(p.RewardsClaimed)
	w.writeInt64(p.LastClaimTime)
	return w.bytes()
}

// DecodeStakePosition rehydrates a stake position.
func DecodeStakePosition(data []byte) (*StakePosition, error) {
	r := newReader(data)
	p := &StakePosition{}
	var err error
	if p.Participant, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.ProjectID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.InitialStake, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.UnitBalance, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.FirstStakeTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.LastStakeTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.RewardsClaimed, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.LastClaimTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	return p, nil
}

// -----------------------------------------------------------------------------
// EpochRewards
// -----------------------------------------------------------------------------

// EncodeEpochRewards serializes the live per-project reward record.
func EncodeEpochRewards(e *EpochRewards) []byte {
	w := newWriter()
	w.writeUint64(e.ProjectID)
	w.writeUint64(e.Epoch)
	w.writeUint64(e.TotalRewards)
	w.writeUint64(e.PlatformFee)
	w.writeUint64(e.ProjectRewards)
	w.writeBool(e.Processed)
	w.writeUint64(e.SwappedAmount)
	w.writeUint64(e.ProjectFee)
	w.writeUint64(e.ProjectAmount)
	w.writeInt64(e.Timestamp)
	return w.bytes()
}

// DecodeEpochRewards rehydrates the reward record.
func DecodeEpochRewards(data []byte) (*EpochRewards, error) {
	r := newReader(data)
	e := &EpochRewards{}
	var err error
	if e.ProjectID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if e.Epoch, err = r.readUint64(); err != nil {
		return nil, err
	}
	if e.TotalRewards, err = r.readUint64(); err != nil {
		return nil, err
	}
	if e.PlatformFee, err = r.readUint64(); err != nil {
		return nil, err
	}
	if e.ProjectRewards, err = r.readUint64(); err != nil {
		return nil, err
	}
	if e.Processed, err = r.readBool(); err != nil {
		return nil, err
	}
	if e.SwappedAmount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if e.ProjectFee, err = r.readUint64(); err != nil {
		return nil, err
	}
	if e.ProjectAmount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if e.Timestamp, err = r.readInt64(); err != nil {
		return nil, err
	}
	return e, nil
}

// -----------------------------------------------------------------------------
// Lockup
// -----------------------------------------------------------------------------

// EncodeLockup serializes a time lock record.
func EncodeLockup(l *Lockup) []byte {
	w := newWriter()
	w.writeAddress(l.Participant)
	w.writeUint64(l.ProjectID)
	w.writeMint(l.ReceiptMint)
	w.writeUint64(l.Amount)
	w.writeInt64(l.StartTime)
	w.writeInt64(l.EndTime)
	w.writeBool(l.IsReleased)
	w.writeInt64(l.ReleaseTime)
	w.writeUint16(l.BonusBps)
	return w.bytes()
}

// DecodeLockup rehydrates a time lock record.
func DecodeLockup(data []byte) (*Lockup, error) {
	r := newReader(data)
	l := &Lockup{}
	var err error
	if l.Participant, err = r.readAddress(); err != nil {
		return nil, err
	}
	if l.ProjectID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if l.ReceiptMint, err = r.readMint(); err != nil {
		return nil, err
	}
	if l.Amount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if l.StartTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if l.EndTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if l.IsReleased, err = r.readBool(); err != nil {
		return nil, err
	}
	if l.ReleaseTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if l.BonusBps, err = r.readUint16(); err != nil {
		return nil, err
	}
	return l, nil
}

// -----------------------------------------------------------------------------
// CrankInfo
// -----------------------------------------------------------------------------

// EncodeCrankInfo serializes the automation registry.
func EncodeCrankInfo(c *CrankInfo) []byte {
	w := newWriter()
	w.writeUint64(c.LastExecutedEpoch)
	w.writeInt64(c.LastExecutionTime)
	w.writeUint64(c.ExecutionCount)
	w.writeAddressList(c.AuthorizedCrankers)
	return w.bytes()
}

// DecodeCrankInfo rehydrates the automation registry.
func DecodeCrankInfo(data []byte) (*CrankInfo, error) {
	r := newReader(data)
	c := &CrankInfo{}
	var err error
	if c.LastExecutedEpoch, err = r.readUint64(); err != nil {
		return nil, err
	}
	if c.LastExecutionTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if c.ExecutionCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if c.AuthorizedCrankers, err = r.readAddressList(); err != nil {
		return nil, err
	}
	return c, nil
}

// -----------------------------------------------------------------------------
// Policy records
// -----------------------------------------------------------------------------

// EncodeRestakeConfig serializes the restake policy.
func EncodeRestakeConfig(c *RestakeConfig) []byte {
	w := newWriter()
	w.writeUint64(c.ProjectID)
	w.writeMint(c.SourceMint)
	w.writeMint(c.TargetMint)
	w.writeUint16(c.RestakeBps)
	w.writeBool(c.IsActive)
	return w.bytes()
}

// DecodeRestakeConfig rehydrates the restake policy.
func DecodeRestakeConfig(data []byte) (*RestakeConfig, error) {
	r := newReader(data)
	c := &RestakeConfig{}
	var err error
	if c.ProjectID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if c.SourceMint, err = r.readMint(); err != nil {
		return nil, err
	}
	if c.TargetMint, err = r.readMint(); err != nil {
		return nil, err
	}
	if c.RestakeBps, err = r.readUint16(); err != nil {
		return nil, err
	}
	if c.IsActive, err = r.readBool(); err != nil {
		return nil, err
	}
	return c, nil
}

// EncodeMultisigConfig serializes the signer policy.
func EncodeMultisigConfig(c *MultisigConfig) []byte {
	w := newWriter()
	w.writeUint64(c.ProjectID)
	w.writeAddressList(c.Signers)
	w.buf.WriteByte(c.Threshold)
	w.writeBool(c.IsActive)
	return w.bytes()
}

// DecodeMultisigConfig rehydrates the signer policy.
func DecodeMultisigConfig(data []byte) (*MultisigConfig, error) {
	r := newReader(data)
	c := &MultisigConfig{}
	var err error
	if c.ProjectID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if c.Signers, err = r.readAddressList(); err != nil {
		return nil, err
	}
	if c.Threshold, err = r.readByte(); err != nil {
		return nil, err
	}
	if c.IsActive, err = r.readBool(); err != nil {
		return nil, err
	}
	return c, nil
}

// -----------------------------------------------------------------------------
// Project index
// -----------------------------------------------------------------------------

// EncodeIDList serializes the registered-project index.
func EncodeIDList(ids []uint64) []byte {
	w := newWriter()
	w.writeVarUint(uint64(len(ids)))
	for _, id := range ids {
		w.writeVarUint(id)
	}
	return w.bytes()
}

// DecodeIDList rehydrates the registered-project index.
func DecodeIDList(data []byte) ([]uint64, error) {
	r := newReader(data)
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	out := make([]uint64, 0, count)
	for i := uint64(0); i < count; i++ {
		id, err := r.readVarUint()
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
