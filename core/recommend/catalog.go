package recommend

import "finops-calc/core/types"

// catalog is the static advisory library. Universal items carry no provider
// scope; provider-specific items only surface when their provider is in the
// caller's selection. Zones gate visibility by health state.
var catalog = []types.Recommendation{
	{Title: "You are below break-even", Desc: "Current client volume is below the minimum viable threshold; fixed and variable costs are not yet recovered.", Action: "Review pricing page and sales funnel conversion. Prioritize moving n above N_min within the next planning cycle.", Providers: []types.Provider{}, Zones: []types.Zone{types.ZoneRed}, Priority: types.PriorityHigh},
	{Title: "CCER below 3x", Desc: "Cloud Cost Efficiency Ratio is below FinOps benchmark. Revenue generated per euro of cloud spend is under target.", Action: "Isolate top cost drivers and enforce unit economics guardrails per service.", Providers: []types.Provider{}, Zones: []types.Zone{types.ZoneRed, types.ZoneYellow}, Priority: types.PriorityHigh},
	{Title: "Contribution margin is negative", Desc: "VCPU is equal to or higher than ARPU. Every incremental client currently destroys value.", Action: "Increase package price floor or reduce per-client infra usage before scaling customer acquisition.", Providers: []types.Provider{}, Zones: []types.Zone{types.ZoneRed}, Priority: types.PriorityHigh},
	{Title: "CUDs/Savings Plans not fully applied", Desc: "Discount gap is still material versus committed pricing options. Commitment strategy is likely under-utilized.", Action: "Review 12-month steady-state usage and map eligible workloads to commitment instruments.", Providers: []types.Provider{}, Zones: []types.Zone{types.ZoneGreen, types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
	{Title: "Implement FinOps cost allocation tagging", Desc: "Without consistent tags, accountability and optimization loops remain weak across teams.", Action: "Enforce mandatory tags for owner, environment, product, and cost-center in IaC and policy checks.", Providers: []types.Provider{}, Zones: []types.Zone{types.ZoneGreen}, Priority: types.PriorityLow},
	{Title: "Set up 12-month cost forecasting", Desc: "Proactive forecasting improves commitment timing, budget confidence, and board-level planning.", Action: "Build monthly forecast scenarios (base/growth/stress) and review variance at each month close.", Providers: []types.Provider{}, Zones: []types.Zone{types.ZoneGreen}, Priority: types.PriorityLow},
	{Title: "AWS Savings Plans coverage", Desc: "Compute Savings Plans can reduce eligible compute spend significantly when baseline usage is stable.", Action: "AWS Console -> Billing and Cost Management -> Savings Plans -> Recommendations.", Providers: []types.Provider{types.ProviderAWS}, Zones: []types.Zone{types.ZoneGreen, types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
	{Title: "AWS right-sizing opportunities", Desc: "Idle and oversized resources create avoidable waste in EC2, EBS, and managed services.", Action: "AWS Cost Explorer -> Rightsizing Recommendations; prioritize top monthly impact accounts.", Providers: []types.Provider{types.ProviderAWS}, Zones: []types.Zone{types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
	{Title: "Use Spot for fault-tolerant workloads", Desc: "Spot capacity can materially reduce non-critical compute costs for resilient jobs.", Action: "EC2 Auto Scaling Groups -> Mixed Instances Policy with Spot allocation strategies.", Providers: []types.Provider{types.ProviderAWS}, Zones: []types.Zone{types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
	{Title: "Enable Cost Anomaly Detection", Desc: "Unexpected spikes should be detected rapidly to reduce financial blast radius.", Action: "AWS Console -> Cost Management -> Cost Anomaly Detection -> Create monitor and alerts.", Providers: []types.Provider{types.ProviderAWS}, Zones: []types.Zone{types.ZoneGreen, types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityHigh},
	{Title: "S3 Intelligent-Tiering for cold data", Desc: "Automatically shifting infrequently accessed objects reduces storage spend with minimal effort.", Action: "S3 Bucket -> Management -> Lifecycle rules and Intelligent-Tiering transition policy.", Providers: []types.Provider{types.ProviderAWS}, Zones: []types.Zone{types.ZoneGreen}, Priority: types.PriorityLow},
	{Title: "Azure Reservations + Hybrid Benefit", Desc: "Reserved capacity and license benefits can materially reduce long-running VM/database costs.", Action: "Azure Portal -> Cost Management + Billing -> Reservations -> Purchase recommendations.", Providers: []types.Provider{types.ProviderAzure}, Zones: []types.Zone{types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
	{Title: "Azure Advisor cost recommendations", Desc: "Advisor identifies right-size, idle shutdown, and architecture-level cost opportunities.", Action: "Azure Portal -> Advisor -> Cost tab; export recommendations into remediation backlog.", Providers: []types.Provider{types.ProviderAzure}, Zones: []types.Zone{types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
	{Title: "Azure budget alerts and controls", Desc: "Budget and anomaly alerting strengthens accountability before overruns become systemic.", Action: "Azure Portal -> Cost Management -> Budgets -> Create budget with action groups.", Providers: []types.Provider{types.ProviderAzure}, Zones: []types.Zone{types.ZoneGreen, types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityHigh},
	{Title: "Azure Spot VMs for non-critical jobs", Desc: "Spot VMs reduce compute spend for interruption-tolerant processing.", Action: "Azure Portal -> Virtual Machines -> Spot instance deployment for candidate workloads.", Providers: []types.Provider{types.ProviderAzure}, Zones: []types.Zone{types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
	{Title: "GCP Resource-based CUDs", Desc: "Resource-based commitments can reduce sustained baseline compute spend on eligible workloads.", Action: "Google Cloud Console -> Billing -> Committed Use Discounts -> Purchase commitments.", Providers: []types.Provider{types.ProviderGCP}, Zones: []types.Zone{types.ZoneGreen, types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
	{Title: "Verify Sustained Use Discounts", Desc: "Check whether workloads are reaching expected utilization to realize automatic discount benefits.", Action: "GCP Billing export -> BigQuery; validate sustained usage discount effectiveness by SKU.", Providers: []types.Provider{types.ProviderGCP}, Zones: []types.Zone{types.ZoneGreen, types.ZoneYellow}, Priority: types.PriorityLow},
	{Title: "Use GCP Recommender for idle resources", Desc: "Idle resources continue to consume spend without revenue contribution.", Action: "GCP Console -> Recommender -> Cost recommendations and cleanup actions.", Providers: []types.Provider{types.ProviderGCP}, Zones: []types.Zone{types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityHigh},
	{Title: "Set Billing Budget alerts with Pub/Sub", Desc: "Automated budget threshold events help trigger operational response workflows quickly.", Action: "GCP Console -> Billing -> Budgets & alerts -> Enable Pub/Sub notifications.", Providers: []types.Provider{types.ProviderGCP}, Zones: []types.Zone{types.ZoneGreen, types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityHigh},
	{Title: "BigQuery query cost controls", Desc: "Query cost can drift quickly without governance on scan bytes and query patterns.", Action: "BigQuery -> Reservations/Quotas + max bytes billed + scheduled query audits.", Providers: []types.Provider{types.ProviderGCP}, Zones: []types.Zone{types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
	{Title: "OCI Universal Credits planning", Desc: "Universal Credits can improve commitment flexibility when workloads shift across OCI services.", Action: "OCI Console -> Billing and Cost Management -> Usage and Credit Allocation review.", Providers: []types.Provider{types.ProviderOCI}, Zones: []types.Zone{types.ZoneGreen, types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
	{Title: "OCI Always Free for dev/test", Desc: "Move suitable non-production workloads to Always Free resources where practical.", Action: "OCI Console -> Compute/Storage provisioning templates mapped to Always Free limits.", Providers: []types.Provider{types.ProviderOCI}, Zones: []types.Zone{types.ZoneGreen}, Priority: types.PriorityLow},
	{Title: "IBM Reserved Virtual Servers", Desc: "Long-running workloads should be shifted to reservation models for lower unit costs.", Action: "IBM Cloud Console -> Billing and Usage -> Reservation planning for persistent workloads.", Providers: []types.Provider{types.ProviderIBM}, Zones: []types.Zone{types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
	{Title: "IBM sustainability + cost co-optimization", Desc: "Joint carbon and cost intelligence can identify high-impact remediation opportunities.", Action: "IBM Environmental Intelligence Suite + cost reports for optimization prioritization.", Providers: []types.Provider{types.ProviderIBM}, Zones: []types.Zone{types.ZoneGreen}, Priority: types.PriorityLow},
	{Title: "Alibaba subscription billing shift", Desc: "Subscription billing can materially reduce compute costs versus pay-as-you-go baselines.", Action: "Alibaba Console -> Billing -> Resource Plans / Subscription migration candidates.", Providers: []types.Provider{types.ProviderAlibaba}, Zones: []types.Zone{types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
	{Title: "Huawei ECS Reservations", Desc: "Reservation strategies reduce long-run compute cost where workloads are predictable.", Action: "Huawei Cloud Console -> Billing Center -> Reserved Instances for ECS fleet.", Providers: []types.Provider{types.ProviderHuawei}, Zones: []types.Zone{types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
	{Title: "Adopt unified multi-cloud FinOps platform", Desc: "Cross-cloud visibility and unit economics governance require a single cost operating model.", Action: "Integrate billing exports into a common platform (CloudHealth/OpenCost/warehouse model).", Providers: []types.Provider{types.ProviderMulti}, Zones: []types.Zone{types.ZoneGreen, types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityHigh},
	{Title: "Control inter-region / inter-cloud egress", Desc: "Network egress charges often become hidden margin erosion drivers in multi-cloud topologies.", Action: "Build monthly egress map by service path; redesign data flows to reduce charge-heavy hops.", Providers: []types.Provider{types.ProviderMulti}, Zones: []types.Zone{types.ZoneGreen, types.ZoneYellow, types.ZoneRed}, Priority: types.PriorityMedium},
}

// Catalog returns a copy of the static advisory library.
func Catalog() []types.Recommendation {
	out := make([]types.Recommendation, len(catalog))
	copy(out, catalog)
	return out
}
