package duconfig

import "github.com/ranstack/oai-du-operator/internal/rf"

// Fixed identifiers and tuning constants the workload image expects.
const (
	gnbID       = 0xe00
	nrCellID    = 12345678
	localPortC  = 500
	remotePortC = 501
	rfsimPort   = 4043
)

// PLMN is one public land mobile network entry together with the slice it
// serves. MCC and MNC are kept as strings so leading zeros render verbatim.
type PLMN struct {
	MCC string
	MNC string
	SST int32
	SD  *int32
}

// Params collects everything the DU configuration depends on: the gNB
// identity, F1 addressing on both ends, the PLMN list received from the CU
// and the derived radio parameters. Addresses are bare host addresses
// without a network mask.
type Params struct {
	GNBName string
	TAC     int32

	DUF1Address string
	DUF1Port    int32
	CUF1Address string
	CUF1Port    int32

	PLMNs []PLMN

	SimulationMode bool
	UseMimo        bool

	Radio *rf.Derived
}

// Build assembles the complete DU configuration document. It is a pure
// function of its params, equal params build an identical document.
func Build(p Params) *Document {
	doc := New()

	doc.List("Active_gNBs").Add(String(p.GNBName))
	doc.Set("Asn1_verbosity", String("none"))
	doc.Set("sa", Int(1))
	doc.Blank()

	gnb := doc.List("gNBs").Record()
	gnb.Comment("Identification parameters")
	gnb.Set("gNB_ID", Hex(gnbID, 0))
	gnb.Set("gNB_DU_ID", Hex(gnbID, 0))
	gnb.Set("gNB_name", String(p.GNBName))
	gnb.Set("tracking_area_code", Int(int64(p.TAC)))

	plmns := gnb.List("plmn_list")
	for _, plmn := range p.PLMNs {
		rec := plmns.Record()
		rec.Set("mcc", Raw(plmn.MCC))
		rec.Set("mnc", Raw(plmn.MNC))
		rec.Set("mnc_length", Int(int64(len(plmn.MNC))))
		snssai := rec.List("snssaiList").Record()
		snssai.Set("sst", Int(int64(plmn.SST)))
		if plmn.SD != nil {
			snssai.Set("sd", Hex(int64(*plmn.SD), 6))
		}
	}

	gnb.Set("nr_cellid", Long(nrCellID))
	gnb.Blank()
	gnb.Set("min_rxtxtime", Int(6))
	if p.UseMimo {
		gnb.Set("pdsch_AntennaPorts_XP", Int(2))
		gnb.Set("pusch_AntennaPorts", Int(2))
		gnb.Set("maxMIMO_layers", Int(2))
	}
	gnb.Blank()

	buildServingCell(gnb, p.Radio)
	gnb.Blank()

	sib1 := gnb.List("pdcch_ConfigSIB1").Record()
	sib1.Set("controlResourceSetZero", Int(int64(p.Radio.CoresetZeroIndex)))
	sib1.Set("searchSpaceZero", Int(0))
	gnb.Blank()

	sctp := gnb.Group("SCTP")
	sctp.Set("SCTP_INSTREAMS", Int(2))
	sctp.Set("SCTP_OUTSTREAMS", Int(2))
	doc.Blank()

	macrlc := doc.List("MACRLCs").Record()
	macrlc.Set("num_cc", Int(1))
	macrlc.Set("tr_s_preference", String("local_L1"))
	macrlc.Set("tr_n_preference", String("f1"))
	macrlc.Set("local_n_address", String(p.DUF1Address))
	macrlc.Set("remote_n_address", String(p.CUF1Address))
	macrlc.Set("local_n_portc", Int(localPortC))
	macrlc.Set("local_n_portd", Int(int64(p.DUF1Port)))
	macrlc.Set("remote_n_portc", Int(remotePortC))
	macrlc.Set("remote_n_portd", Int(int64(p.CUF1Port)))
	macrlc.Set("pusch_TargetSNRx10", Int(200))
	macrlc.Set("pucch_TargetSNRx10", Int(150))
	doc.Blank()

	l1 := doc.List("L1s").Record()
	l1.Set("num_cc", Int(1))
	l1.Set("tr_n_preference", String("local_mac"))
	l1.Set("prach_dtx_threshold", Int(200))
	l1.Set("pucch0_dtx_threshold", Int(100))
	l1.Set("ofdm_offset_divisor", Int(8))
	doc.Blank()

	ru := doc.List("RUs").Record()
	ru.Set("local_rf", String("yes"))
	antennas := int64(1)
	if p.UseMimo {
		antennas = 2
	}
	ru.Set("nb_tx", Int(antennas))
	ru.Set("nb_rx", Int(antennas))
	ru.Set("att_tx", Int(0))
	ru.Set("att_rx", Int(0))
	ru.Array("bands", Int(int64(p.Radio.Band)))
	ru.Set("max_pdschReferenceSignalPower", Int(-27))
	ru.Set("max_rxgain", Int(114))
	ru.Set("sf_extension", Int(0))
	ru.Array("eNB_instances", Int(0))
	ru.Set("clock_src", String("internal"))
	doc.Blank()

	threads := doc.List("THREAD_STRUCT").Record()
	threads.Set("parallel_config", String("PARALLEL_SINGLE_THREAD"))
	threads.Set("worker_config", String("WORKER_ENABLE"))
	doc.Blank()

	if p.SimulationMode {
		sim := doc.Group("rfsimulator")
		sim.Set("serveraddr", String("server"))
		sim.Set("serverport", Int(rfsimPort))
		doc.Blank()
	}

	logs := doc.Group("log_config")
	for _, component := range []string{"global", "hw", "phy", "mac", "rlc", "pdcp", "rrc", "ngap", "f1ap"} {
		logs.Set(component+"_log_level", String("info"))
	}

	return doc
}

func buildServingCell(gnb *Record, radio *rf.Derived) {
	mu := Int(int64(radio.Numerology))

	cell := gnb.List("servingCellConfigCommon").Record()
	cell.Set("physCellId", Int(0))
	cell.Blank()
	cell.Comment("frequency configuration")
	cell.Set("absoluteFrequencySSB", Int(int64(radio.AbsoluteFrequencySSB)))
	cell.Set("dl_frequencyBand", Int(int64(radio.Band)))
	cell.Set("dl_absoluteFrequencyPointA", Int(int64(radio.AbsoluteFrequencyPointA)))
	cell.Set("dl_offstToCarrier", Int(0))
	cell.Comment("subcarrierSpacing 0 = 15 kHz, 1 = 30 kHz, 2 = 60 kHz")
	cell.Set("dl_subcarrierSpacing", mu)
	cell.Set("dl_carrierBandwidth", Int(int64(radio.CarrierBandwidth)))
	cell.Set("initialDLBWPlocationAndBandwidth", Int(int64(radio.InitialBWP)))
	cell.Set("initialDLBWPsubcarrierSpacing", mu)
	cell.Set("ul_frequencyBand", Int(int64(radio.Band)))
	cell.Set("ul_offstToCarrier", Int(0))
	cell.Set("ul_subcarrierSpacing", mu)
	cell.Set("ul_carrierBandwidth", Int(int64(radio.CarrierBandwidth)))
	cell.Set("pMax", Int(20))
	cell.Set("initialULBWPlocationAndBandwidth", Int(int64(radio.InitialBWP)))
	cell.Set("initialULBWPsubcarrierSpacing", mu)
	cell.Blank()
	cell.Comment("PRACH")
	cell.Set("prach_ConfigurationIndex", Int(98))
	cell.Set("prach_msg1_FDM", Int(0))
	cell.Set("prach_msg1_FrequencyStart", Int(0))
	cell.Set("zeroCorrelationZoneConfig", Int(13))
	cell.Set("preambleReceivedTargetPower", Int(-96))
	cell.Set("preambleTransMax", Int(6))
	cell.Set("powerRampingStep", Int(1))
	cell.Set("ra_ResponseWindow", Int(4))
	cell.Set("ssb_perRACH_OccasionAndCB_PreamblesPerSSB_PR", Int(4))
	cell.Set("ssb_perRACH_OccasionAndCB_PreamblesPerSSB", Int(14))
	cell.Set("ra_ContentionResolutionTimer", Int(7))
	cell.Set("rsrp_ThresholdSSB", Int(19))
	cell.Set("prach_RootSequenceIndex_PR", Int(2))
	cell.Set("prach_RootSequenceIndex", Int(1))
	cell.Set("msg1_SubcarrierSpacing", mu)
	cell.Set("restrictedSetConfig", Int(0))
	cell.Set("msg3_DeltaPreamble", Int(1))
	cell.Set("p0_NominalWithGrant", Int(-90))
	cell.Blank()
	cell.Comment("PUCCH")
	cell.Set("pucchGroupHopping", Int(0))
	cell.Set("hoppingId", Int(40))
	cell.Set("p0_nominal", Int(-90))
	cell.Blank()
	cell.Comment("SSB")
	cell.Set("ssb_PositionsInBurst_Bitmap", Int(1))
	cell.Set("ssb_periodicityServingCell", Int(2))
	cell.Set("dmrs_TypeA_Position", Int(0))
	cell.Set("subcarrierSpacing", mu)
	cell.Blank()
	cell.Comment("TDD")
	cell.Set("referenceSubcarrierSpacing", mu)
	cell.Set("dl_UL_TransmissionPeriodicity", Int(6))
	cell.Set("nrofDownlinkSlots", Int(7))
	cell.Set("nrofDownlinkSymbols", Int(6))
	cell.Set("nrofUplinkSlots", Int(2))
	cell.Set("nrofUplinkSymbols", Int(4))
	cell.Blank()
	cell.Set("ssPBCH_BlockPower", Int(-25))
}
